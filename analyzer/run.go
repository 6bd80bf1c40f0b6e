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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncname/internal/astutil"
	"fillmore-labs.com/asyncname/internal/awaitable"
	"fillmore-labs.com/asyncname/internal/config"
	"fillmore-labs.com/asyncname/internal/report"
)

// asyncSuffix is the conventional suffix for awaitable-returning functions.
const asyncSuffix = "Async"

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the asyncname analyzer over a single pass.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("asyncname: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	fix := r.behavior.Enabled(config.SuggestFixes)

	// Remember the current file over all declarations in it
	var currentFile astutil.CurrentFile

	root, nodeTypes := in.Root(), []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.InterfaceType)(nil),
	}

	root.Inspect(nodeTypes, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.FuncDecl:
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Function declaration %s without file info", node.Name.Name)

				return false
			}

			// Skip functions with nolint comment
			if node.Doc != nil && astutil.CommentHasNoLint(node.Doc.List[len(node.Doc.List)-1]) {
				return false
			}

			r.checkName(p, node.Name, fix)

			return true

		case *ast.InterfaceType:
			if r.behavior.Enabled(config.CheckInterfaces) {
				r.checkInterface(p, currentFile, node, fix)
			}

			return true

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// checkInterface checks every explicit method of an interface type.
// Embedded interfaces are skipped; their methods are reported at their
// declaration site.
func (r *runOptions) checkInterface(p *analysis.Pass, currentFile astutil.CurrentFile, node *ast.InterfaceType, fix bool) {
	if node.Methods == nil {
		return
	}

	for _, field := range node.Methods.List {
		if len(field.Names) != 1 {
			continue // embedded interface or type set term
		}

		if currentFile.NoLintComment(field.Pos()) {
			continue
		}

		r.checkName(p, field.Names[0], fix)
	}
}

// checkName reports id when it resolves to a function whose first result is
// awaitable and whose name lacks the Async suffix. Unresolved identifiers
// are skipped silently.
func (r *runOptions) checkName(p *analysis.Pass, id *ast.Ident, fix bool) {
	if strings.HasSuffix(id.Name, asyncSuffix) {
		return
	}

	fn, ok := p.TypesInfo.Defs[id].(*types.Func)
	if !ok {
		return
	}

	if !awaitable.Result(fn.Signature()) {
		return
	}

	report.MissingSuffix(p, id, fn, fix)
}
