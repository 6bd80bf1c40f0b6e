// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package source

import "fmt"

// Span is a half-open byte range [Start, End) within a single source file.
type Span struct {
	Start uint32
	End   uint32
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// LineCol is a 1-based line and column position.
type LineCol struct {
	Line uint32
	Col  uint32
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}
