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
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"sort"
	"strconv"

	"fillmore-labs.com/asyncname/internal/source"
)

// ErrImportCycle is returned when the provided sources import each other
// cyclically. This violates the compilation's preconditions and cannot be
// degraded around.
var ErrImportCycle = errors.New("import cycle among source packages")

// CompileSources builds a [Compilation] from an in-memory map of file path
// to Go source text, without touching the filesystem or the toolchain.
//
// Files are grouped into one package per directory, and the directory path
// doubles as the import path, so "app/main.go" may import "lib" to refer
// to "lib/lib.go". Imports outside the provided sources stay unresolved;
// like any other resolution failure they degrade to skipped declarations,
// never to a compile error.
func CompileSources(ctx context.Context, sources map[string]string) (*Compilation, error) {
	fset := token.NewFileSet()
	files := source.NewFileSet()

	units, err := parseUnits(fset, files, sources)
	if err != nil {
		return nil, err
	}

	order, err := topoSort(units)
	if err != nil {
		return nil, err
	}

	compiled := make(map[string]*types.Package, len(units))

	var pkgs []*Package

	for _, dir := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		u := units[dir]

		info := &types.Info{
			Defs:       make(map[*ast.Ident]types.Object),
			Uses:       make(map[*ast.Ident]types.Object),
			Types:      make(map[ast.Expr]types.TypeAndValue),
			Selections: make(map[*ast.SelectorExpr]*types.Selection),
			Implicits:  make(map[ast.Node]types.Object),
			Scopes:     make(map[ast.Node]*types.Scope),
			Instances:  make(map[*ast.Ident]types.Instance),
		}

		conf := types.Config{
			Error:    func(error) {}, // collect nothing, skip nodes later
			Importer: unitImporter(compiled),
		}

		// Check returns the package even when it recorded type errors.
		tpkg, _ := conf.Check(dir, fset, u.files, info)
		compiled[dir] = tpkg

		pkgs = append(pkgs, &Package{Path: dir, Types: tpkg, Info: info, Syntax: u.files})
	}

	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}

	return newCompilation(fset, files, pkgs), nil
}

type unit struct {
	files   []*ast.File
	imports []string // directories of other units this one imports
}

func parseUnits(fset *token.FileSet, files *source.FileSet, sources map[string]string) (map[string]*unit, error) {
	paths := make([]string, 0, len(sources))
	for p := range sources {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	units := make(map[string]*unit)

	for _, p := range paths {
		text := sources[p]
		files.AddVirtual(p, []byte(text))

		// Keep the partial tree on syntax errors; unresolved nodes are
		// skipped during analysis.
		f, _ := parser.ParseFile(fset, p, text, parser.ParseComments|parser.SkipObjectResolution)
		if f == nil {
			continue
		}

		dir := path.Dir(p)

		u := units[dir]
		if u == nil {
			u = &unit{}
			units[dir] = u
		}

		u.files = append(u.files, f)

		for _, imp := range f.Imports {
			if target, err := strconv.Unquote(imp.Path.Value); err == nil {
				u.imports = append(u.imports, target)
			}
		}
	}

	return units, nil
}

// topoSort orders units so every unit is checked after its dependencies.
func topoSort(units map[string]*unit) ([]string, error) {
	indegree := make(map[string]int, len(units))
	dependents := make(map[string][]string, len(units))

	for dir := range units {
		indegree[dir] += 0
	}

	for dir, u := range units {
		for _, imp := range u.imports {
			if _, ok := units[imp]; ok && imp != dir {
				indegree[dir]++
				dependents[imp] = append(dependents[imp], dir)
			}
		}
	}

	ready := make([]string, 0, len(units))
	for dir, deg := range indegree {
		if deg == 0 {
			ready = append(ready, dir)
		}
	}

	sort.Strings(ready)

	order := make([]string, 0, len(units))

	for len(ready) > 0 {
		dir := ready[0]
		ready = ready[1:]
		order = append(order, dir)

		next := dependents[dir]
		sort.Strings(next)

		for _, dep := range next {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
	}

	if len(order) != len(units) {
		return nil, ErrImportCycle
	}

	return order, nil
}

// unitImporter resolves imports among the compiled in-memory packages.
// Anything else is reported as unresolved and tolerated by the checker.
type unitImporter map[string]*types.Package

func (u unitImporter) Import(importPath string) (*types.Package, error) {
	if pkg, ok := u[importPath]; ok {
		return pkg, nil
	}

	return nil, errors.New("engine: package not provided: " + importPath)
}
