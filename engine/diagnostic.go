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

import (
	"go/types"
	"sort"

	"fillmore-labs.com/asyncname/internal/source"
)

// Diagnostic is one detected rule violation.
//
// Diagnostics are immutable once created. The originating symbol is carried
// opaquely so that [ComputeFix] can rename by semantic identity rather than
// by matching text; it never survives serialization.
type Diagnostic struct {
	// Rule is the stable identifier of the emitting rule, e.g. "ASYNC001".
	Rule string `json:"rule"`

	// Severity is the effective severity of this diagnostic.
	Severity Severity `json:"severity"`

	// Message is the fully substituted diagnostic message.
	Message string `json:"message"`

	// Path is the source file, Span the byte range of the violating identifier.
	Path string      `json:"path"`
	Span source.Span `json:"span"`

	symbol *types.Func
}

// WithSeverity returns a copy of the diagnostic relabeled to s.
// The reporting surface uses this for per-rule severity overrides.
func (d Diagnostic) WithSeverity(s Severity) Diagnostic {
	d.Severity = s

	return d
}

// sortDiagnostics orders diagnostics by file path, start offset, end offset
// and rule ID. Analysis may run files on arbitrary workers; this fixed
// order is what makes build logs and test snapshots reproducible.
func sortDiagnostics(diagnostics []Diagnostic) {
	sort.SliceStable(diagnostics, func(i, j int) bool {
		di, dj := diagnostics[i], diagnostics[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}

		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}

		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}

		return di.Rule < dj.Rule
	})
}
