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

package diagfmt

import (
	"encoding/json"
	"io"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/source"
)

// jsonDiagnostic is the machine-readable projection of a diagnostic,
// with the span resolved to 1-based line/column positions.
type jsonDiagnostic struct {
	engine.Diagnostic
	Line int `json:"line"`
	Col  int `json:"col"`
}

// JSON renders diagnostics as a JSON array.
func JSON(w io.Writer, diagnostics []engine.Diagnostic, fs *source.FileSet) error {
	out := make([]jsonDiagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		start, _ := fs.Resolve(d.Path, d.Span)
		out = append(out, jsonDiagnostic{Diagnostic: d, Line: int(start.Line), Col: int(start.Col)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
