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

package report

import (
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// renameEdits generates text edits renaming fn to newName across all files
// of the pass.
//
// The method returns nil if the new name would collide with an existing
// member of fn's receiver type or an existing name in fn's package scope,
// since applying such a rename would change resolution or break the build.
func renameEdits(p *analysis.Pass, fn *types.Func, newName string) []analysis.TextEdit {
	if hasConflict(p, fn, newName) {
		return nil
	}

	origin := fn.Origin()

	var edits []analysis.TextEdit

	// Find all occurrences of this function (declaration and uses)
	for _, file := range p.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			id, ok := n.(*ast.Ident)
			if !ok || !idIsFunc(p.TypesInfo, id, origin) {
				return true
			}

			edits = append(edits, analysis.TextEdit{
				Pos:     id.Pos(),
				End:     id.End(),
				NewText: []byte(newName),
			})

			return true
		})
	}

	slices.SortFunc(edits, func(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) })

	return edits
}

// idIsFunc checks if the given identifier resolves to the specified function.
// Generic instantiations are matched through their origin.
func idIsFunc(info *types.Info, id *ast.Ident, origin *types.Func) bool {
	var obj types.Object
	if use, ok := info.Uses[id]; ok {
		obj = use
	} else if def, ok := info.Defs[id]; ok {
		obj = def
	} else {
		return false
	}

	f, ok := obj.(*types.Func)

	return ok && f.Origin() == origin
}

// hasConflict checks whether newName is already taken in the scope the
// rename would place it in.
//
// For methods that is the receiver's member set, including promoted members
// and fields; for package-level functions it is the package scope.
func hasConflict(p *analysis.Pass, fn *types.Func, newName string) bool {
	if recv := fn.Signature().Recv(); recv != nil {
		obj, _, _ := types.LookupFieldOrMethod(recv.Type(), true, fn.Pkg(), newName)

		return obj != nil
	}

	if pkg := fn.Pkg(); pkg != nil {
		return pkg.Scope().Lookup(newName) != nil
	}

	return false
}
