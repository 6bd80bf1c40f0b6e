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
	"fmt"
	"io"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/source"
)

// Short renders one line per diagnostic, grep-friendly.
func Short(w io.Writer, diagnostics []engine.Diagnostic, fs *source.FileSet) error {
	for _, d := range diagnostics {
		start, _ := fs.Resolve(d.Path, d.Span)

		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			d.Path, start.Line, start.Col, d.Rule, d.Message); err != nil {
			return err
		}
	}

	return nil
}
