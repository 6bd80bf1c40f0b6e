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

// Package load discovers the Go source files a check run should cover.
//
// Discovery honors the repository's .gitignore and the Go toolchain's
// conventions: vendor trees, testdata and underscore- or dot-prefixed
// directories are never analyzed.
package load

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

var skipDirs = map[string]struct{}{
	"vendor":       {},
	"testdata":     {},
	"node_modules": {},
}

// GoFiles returns the non-ignored .go files under root, as slash-separated
// paths relative to root, in sorted order.
func GoFiles(root string) ([]string, error) {
	gi := loadGitignore(root)

	var results []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}

			if skip(name) {
				return filepath.SkipDir
			}

			if rel, ok := relative(root, path); ok && gi != nil && gi.MatchesPath(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(name, ".go") || strings.HasPrefix(name, ".") {
			return nil
		}

		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, ok := relative(root, path)
		if !ok {
			return nil
		}

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, rel)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)

	return results, nil
}

// Covered reports whether path, relative to root, belongs to the discovered
// set. It is used to filter diagnostics produced for files the load step
// would not have selected, e.g. vendored code pulled in through packages.
func Covered(files []string, root, path string) bool {
	rel, ok := relative(root, path)
	if !ok {
		rel = filepath.ToSlash(path)
	}

	i := sort.SearchStrings(files, rel)

	return i < len(files) && files[i] == rel
}

func skip(name string) bool {
	if _, ok := skipDirs[name]; ok {
		return true
	}

	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// loadGitignore parses root's .gitignore; a missing or unreadable file
// means nothing is ignored.
func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	return gi
}

func relative(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}

	return filepath.ToSlash(rel), true
}
