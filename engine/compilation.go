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
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"fortio.org/safecast"

	"fillmore-labs.com/asyncname/internal/source"
)

// Package is one type-checked package inside a [Compilation].
type Package struct {
	// Path is the package's import path.
	Path string

	// Types and Info hold the resolved semantic model. Info maps are
	// read-only during analysis.
	Types *types.Package
	Info  *types.Info

	// Syntax holds the parsed files, one immutable tree per source file.
	Syntax []*ast.File
}

// Compilation is the immutable aggregate of all parsed syntax trees and
// their resolved symbol relationships.
//
// A compilation is built once per invocation by [LoadPackages] or
// [CompileSources]; any source change requires a new compilation.
type Compilation struct {
	fset  *token.FileSet
	files *source.FileSet
	pkgs  []*Package
}

func newCompilation(fset *token.FileSet, files *source.FileSet, pkgs []*Package) *Compilation {
	return &Compilation{fset: fset, files: files, pkgs: pkgs}
}

// Files returns the source text the compilation was built from.
func (c *Compilation) Files() *source.FileSet {
	return c.files
}

// Packages returns the compiled packages.
func (c *Compilation) Packages() []*Package {
	return c.pkgs
}

// Reference is one syntax location resolving to a symbol.
type Reference struct {
	Path string
	Span source.Span
}

// ReferencesTo returns every identifier resolving to fn across the whole
// compilation, the declaration included, sorted by file path and offset.
func (c *Compilation) ReferencesTo(fn *types.Func) []Reference {
	target := fn.Origin()

	var refs []Reference

	for _, pkg := range c.pkgs {
		for id, obj := range pkg.Info.Defs {
			if sameFunc(obj, target) {
				refs = c.appendRef(refs, id)
			}
		}

		for id, obj := range pkg.Info.Uses {
			if sameFunc(obj, target) {
				refs = c.appendRef(refs, id)
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Path != refs[j].Path {
			return refs[i].Path < refs[j].Path
		}

		return refs[i].Span.Start < refs[j].Span.Start
	})

	return refs
}

// sameFunc reports whether obj is fn or an instantiation of fn.
func sameFunc(obj types.Object, fn *types.Func) bool {
	f, ok := obj.(*types.Func)

	return ok && f.Origin() == fn
}

func (c *Compilation) appendRef(refs []Reference, id *ast.Ident) []Reference {
	path, span, ok := c.span(id)
	if !ok {
		return refs
	}

	return append(refs, Reference{Path: path, Span: span})
}

// span converts node positions into a file path and byte span.
func (c *Compilation) span(n ast.Node) (string, source.Span, bool) {
	pos, end := c.fset.Position(n.Pos()), c.fset.Position(n.End())
	if !pos.IsValid() || !end.IsValid() || pos.Filename != end.Filename {
		return "", source.Span{}, false
	}

	start, err := safecast.Conv[uint32](pos.Offset)
	if err != nil {
		return "", source.Span{}, false
	}

	stop, err := safecast.Conv[uint32](end.Offset)
	if err != nil {
		return "", source.Span{}, false
	}

	return pos.Filename, source.Span{Start: start, End: stop}, true
}

// funcFor resolves a declared identifier to its function symbol, or nil
// when semantic resolution failed for the surrounding code.
func funcFor(pkg *Package, id *ast.Ident) *types.Func {
	fn, _ := pkg.Info.Defs[id].(*types.Func)

	return fn
}
