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
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/asyncname/internal/source"
)

// ErrNoPackages is returned when loading resolves no analyzable packages.
var ErrNoPackages = errors.New("no packages to analyze")

// LoadPackages builds a [Compilation] from on-disk Go packages.
//
// Patterns follow go/packages conventions; an empty pattern list means
// "./...". Packages with type errors are kept: analysis degrades gracefully
// by skipping declarations whose symbols did not resolve.
func LoadPackages(ctx context.Context, dir string, patterns ...string) (*Compilation, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Fset:    fset,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}

	loaded, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("engine: loading packages: %w", err)
	}

	files := source.NewFileSet()
	seen := make(map[string]bool, len(loaded))

	var pkgs []*Package

	for _, pkg := range loaded {
		if pkg.TypesInfo == nil || seen[pkg.PkgPath] {
			continue
		}

		seen[pkg.PkgPath] = true

		for _, f := range pkg.Syntax {
			name := fset.Position(f.FileStart).Filename
			if err := files.Load(name); err != nil {
				return nil, fmt.Errorf("engine: reading %s: %w", name, err)
			}
		}

		pkgs = append(pkgs, &Package{
			Path:   pkg.PkgPath,
			Types:  pkg.Types,
			Info:   pkg.TypesInfo,
			Syntax: pkg.Syntax,
		})
	}

	if len(pkgs) == 0 {
		return nil, ErrNoPackages
	}

	return newCompilation(fset, files, pkgs), nil
}
