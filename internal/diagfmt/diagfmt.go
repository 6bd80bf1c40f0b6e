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

// Package diagfmt renders diagnostics for terminal and machine consumers.
package diagfmt

import (
	"errors"
	"fmt"
	"io"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/source"
)

// Format selects an output renderer.
type Format string

// Supported output formats.
const (
	FormatPretty Format = "pretty"
	FormatShort  Format = "short"
	FormatJSON   Format = "json"
)

// ErrUnknownFormat is returned by [ParseFormat] for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatPretty, FormatShort, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (pretty|short|json)", ErrUnknownFormat, name)
	}
}

// Options configure rendering.
type Options struct {
	// Color enables ANSI colors; only the pretty format uses it.
	Color bool
}

// Render writes diagnostics to w in the selected format. The file set
// provides content for line/column resolution and source context.
func Render(w io.Writer, format Format, diagnostics []engine.Diagnostic, fs *source.FileSet, opts Options) error {
	switch format {
	case FormatShort:
		return Short(w, diagnostics, fs)
	case FormatJSON:
		return JSON(w, diagnostics, fs)
	default:
		return Pretty(w, diagnostics, fs, opts)
	}
}
