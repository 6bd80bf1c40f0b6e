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
	"strings"

	"github.com/fatih/color"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/source"
)

var severityColors = map[engine.Severity]*color.Color{
	engine.SeverityError:   color.New(color.FgRed, color.Bold),
	engine.SeverityWarning: color.New(color.FgYellow, color.Bold),
	engine.SeverityInfo:    color.New(color.FgCyan),
}

// Pretty renders diagnostics in a human-readable form. Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <severity> <rule>: <message>
//
// followed by the offending source line with a ^~~~ underline of the span.
func Pretty(w io.Writer, diagnostics []engine.Diagnostic, fs *source.FileSet, opts Options) error {
	for _, d := range diagnostics {
		start, _ := fs.Resolve(d.Path, d.Span)

		severity := strings.ToUpper(d.Severity.String())
		if c := severityColors[d.Severity]; opts.Color && c != nil {
			severity = c.Sprint(severity)
		}

		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			d.Path, start.Line, start.Col, severity, d.Rule, d.Message); err != nil {
			return err
		}

		if err := writeContext(w, fs, d, start); err != nil {
			return err
		}
	}

	return nil
}

// writeContext prints the source line of the diagnostic with an underline.
func writeContext(w io.Writer, fs *source.FileSet, d engine.Diagnostic, start source.LineCol) error {
	f := fs.Get(d.Path)
	if f == nil || start.Line == 0 {
		return nil
	}

	line := lineContent(f.Content, int(d.Span.Start))
	if line == "" {
		return nil
	}

	underline := strings.Repeat(" ", int(start.Col)-1) + "^"
	if n := d.Span.Len(); n > 1 {
		underline += strings.Repeat("~", int(n)-1)
	}

	_, err := fmt.Fprintf(w, "  %s\n  %s\n", line, underline)

	return err
}

// lineContent extracts the line of content containing byte offset off,
// without the trailing newline.
func lineContent(content []byte, off int) string {
	if off > len(content) {
		return ""
	}

	begin := off
	for begin > 0 && content[begin-1] != '\n' {
		begin--
	}

	end := off
	for end < len(content) && content[end] != '\n' {
		end++
	}

	return strings.TrimSuffix(string(content[begin:end]), "\r")
}
