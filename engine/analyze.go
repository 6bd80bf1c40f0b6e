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
	"context"
	"fmt"
	"go/ast"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"
)

// AnalyzeConfig tunes [AnalyzeConfig.Analyze]. The zero value is ready to use.
type AnalyzeConfig struct {
	// Jobs is the maximum number of parallel file workers; 0 means GOMAXPROCS.
	Jobs int
}

// Analyze runs the rule set over the compilation with default configuration.
func Analyze(ctx context.Context, comp *Compilation, rules []Rule) ([]Diagnostic, error) {
	return AnalyzeConfig{}.Analyze(ctx, comp, rules)
}

// Analyze runs every rule over the compilation and returns the diagnostics
// in deterministic order.
//
// Files are analyzed on parallel workers; each worker accumulates into its
// own result slot, so the hot path is lock-free and the compilation is
// never mutated. Cancellation is checked at file boundaries and aborts
// without partial side effects.
func (cfg AnalyzeConfig) Analyze(ctx context.Context, comp *Compilation, rules []Rule) ([]Diagnostic, error) {
	byKind := subscriptions(rules)
	if len(byKind) == 0 {
		return nil, nil
	}

	units := fileUnits(comp)
	if len(units) == 0 {
		return nil, nil
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]Diagnostic, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, u := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = analyzeFile(comp, u, byKind)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var diagnostics []Diagnostic
	for _, r := range results {
		diagnostics = append(diagnostics, r...)
	}

	sortDiagnostics(diagnostics)

	return diagnostics, nil
}

// fileUnit is the unit of parallel work: one file of one package.
type fileUnit struct {
	pkg  *Package
	file *ast.File
	path string
}

// fileUnits returns all files of the compilation in sorted path order, so
// result slot indices are stable across runs.
func fileUnits(comp *Compilation) []fileUnit {
	var units []fileUnit

	for _, pkg := range comp.pkgs {
		for _, f := range pkg.Syntax {
			name := comp.fset.Position(f.FileStart).Filename

			units = append(units, fileUnit{pkg: pkg, file: f, path: name})
		}
	}

	sort.Slice(units, func(i, j int) bool { return units[i].path < units[j].path })

	return units
}

// subscriptions inverts the rule set into a kind -> rules dispatch table.
func subscriptions(rules []Rule) map[NodeKind][]Rule {
	byKind := make(map[NodeKind][]Rule)

	for _, rule := range rules {
		for _, kind := range rule.Meta().Kinds {
			byKind[kind] = append(byKind[kind], rule)
		}
	}

	return byKind
}

func analyzeFile(comp *Compilation, u fileUnit, byKind map[NodeKind][]Rule) []Diagnostic {
	var nodeTypes []ast.Node

	if len(byKind[KindFuncDecl]) > 0 {
		nodeTypes = append(nodeTypes, (*ast.FuncDecl)(nil))
	}

	if len(byKind[KindInterfaceMethod]) > 0 {
		nodeTypes = append(nodeTypes, (*ast.InterfaceType)(nil))
	}

	var out []Diagnostic

	in := inspector.New([]*ast.File{u.file})
	in.Preorder(nodeTypes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.FuncDecl:
			comp.checkDecl(&out, u, byKind[KindFuncDecl], KindFuncDecl, n.Name)

		case *ast.InterfaceType:
			if n.Methods == nil {
				return
			}

			for _, field := range n.Methods.List {
				if _, ok := field.Type.(*ast.FuncType); !ok {
					continue // embedded interface
				}

				for _, name := range field.Names {
					comp.checkDecl(&out, u, byKind[KindInterfaceMethod], KindInterfaceMethod, name)
				}
			}
		}
	})

	return out
}

// checkDecl dispatches one declared identifier to every subscribed rule.
func (c *Compilation) checkDecl(out *[]Diagnostic, u fileUnit, rules []Rule, kind NodeKind, id *ast.Ident) {
	path, span, ok := c.span(id)
	if !ok {
		return
	}

	m := MethodInfo{
		Kind:     kind,
		Name:     id.Name,
		Path:     path,
		NameSpan: span,
		Symbol:   funcFor(u.pkg, id),
	}

	for _, rule := range rules {
		meta := rule.Meta()

		rule.Check(m, func(format string, args ...any) {
			*out = append(*out, Diagnostic{
				Rule:     meta.ID,
				Severity: meta.DefaultSeverity,
				Message:  fmt.Sprintf(format, args...),
				Path:     path,
				Span:     span,
				symbol:   m.Symbol,
			})
		})
	}
}
