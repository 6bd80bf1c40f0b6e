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

package load_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/asyncname/internal/load"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func TestGoFiles(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"main.go":               "package main\n",
		"pkg/pkg.go":            "package pkg\n",
		"pkg/pkg_test.go":       "package pkg\n",
		"pkg/notes.md":          "readme\n",
		"vendor/dep/dep.go":     "package dep\n",
		"testdata/fixture.go":   "package fixture\n",
		"_attic/old.go":         "package old\n",
		".cache/tmp.go":         "package tmp\n",
		"generated/skipme.go":   "package skipme\n",
		"generated/included.go": "package generated\n",
		".gitignore":            "generated/skipme.go\n",
	})

	got, err := GoFiles(root)
	if err != nil {
		t.Fatalf("GoFiles: %v", err)
	}

	want := []string{
		"generated/included.go",
		"main.go",
		"pkg/pkg.go",
		"pkg/pkg_test.go",
	}

	if !slices.Equal(got, want) {
		t.Errorf("GoFiles:\n got %v\nwant %v", got, want)
	}
}

func TestGoFilesIgnoredDir(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a/a.go":       "package a\n",
		"build/gen.go": "package gen\n",
		".gitignore":   "build/\n",
	})

	got, err := GoFiles(root)
	if err != nil {
		t.Fatalf("GoFiles: %v", err)
	}

	want := []string{"a/a.go"}
	if !slices.Equal(got, want) {
		t.Errorf("GoFiles:\n got %v\nwant %v", got, want)
	}
}

func TestCovered(t *testing.T) {
	t.Parallel()

	files := []string{"a/a.go", "main.go"}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "Relative", path: "a/a.go", want: true},
		{name: "Absolute", path: filepath.Join("/repo", "main.go"), want: true},
		{name: "Missing", path: "b/b.go", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Covered(files, "/repo", tt.path); got != tt.want {
				t.Errorf("Covered(%q) = %t, want %t", tt.path, got, tt.want)
			}
		})
	}
}
