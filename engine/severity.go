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

package engine

import "fmt"

// Severity classifies the importance of a [Diagnostic].
// Higher values are more severe.
type Severity uint8

const (
	// SeverityHidden diagnostics are computed but not surfaced.
	SeverityHidden Severity = iota

	// SeverityInfo diagnostics are informational suggestions.
	SeverityInfo

	// SeverityWarning diagnostics indicate a violation that does not fail a build.
	SeverityWarning

	// SeverityError diagnostics fail a build.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityHidden:
		return "hidden"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}

	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
