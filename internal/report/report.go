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

// Package report emits asyncname diagnostics and rename fixes through the
// analysis framework.
package report

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// message is substituted with the method's simple name at report time.
const message = "Method '%s' returns an awaitable type but its name does not end with 'Async'"

// suffix is appended to a flagged name by the suggested rename.
const suffix = "Async"

// MissingSuffix reports fn, declared at id, as lacking the Async suffix.
//
// When fix is true and the suffixed name is free in fn's declaring type or
// package scope, the diagnostic carries a suggested fix renaming the
// declaration and every reference within the current pass. Fixes are
// never offered on conflicting names; the diagnostic alone is emitted.
func MissingSuffix(p *analysis.Pass, id *ast.Ident, fn *types.Func, fix bool) {
	diagnostic := analysis.Diagnostic{
		Pos:     id.Pos(),
		End:     id.End(),
		Message: fmt.Sprintf(message, id.Name),
	}

	if fix && fn != nil {
		newName := id.Name + suffix

		if edits := renameEdits(p, fn, newName); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   fmt.Sprintf("Rename '%s' to '%s'", id.Name, newName),
				TextEdits: edits,
			}}
		}
	}

	p.Report(diagnostic)
}
