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

package source_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "fillmore-labs.com/asyncname/internal/source"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	fs := NewFileSet()
	fs.AddVirtual("a.go", []byte("one\ntwo\nthree\n"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{name: "FirstLine", span: Span{Start: 0, End: 3}, start: LineCol{Line: 1, Col: 1}, end: LineCol{Line: 1, Col: 4}},
		{name: "SecondLine", span: Span{Start: 4, End: 7}, start: LineCol{Line: 2, Col: 1}, end: LineCol{Line: 2, Col: 4}},
		{name: "LineStart", span: Span{Start: 8, End: 8}, start: LineCol{Line: 3, Col: 1}, end: LineCol{Line: 3, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := fs.Resolve("a.go", tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve(%v) = %v, %v, want %v, %v", tt.span, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestResolveUnknownPath(t *testing.T) {
	t.Parallel()

	fs := NewFileSet()

	if start, end := fs.Resolve("missing.go", Span{Start: 0, End: 1}); start != (LineCol{}) || end != (LineCol{}) {
		t.Errorf("Resolve on unknown path = %v, %v, want zero values", start, end)
	}
}

func TestCommitFlush(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")

	if err := os.WriteFile(path, []byte("package a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	if err := fs.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	normalized := filepath.ToSlash(path)

	if f := fs.Get(path); f == nil || f.Dirty() || f.Virtual() {
		t.Fatalf("unexpected state after load: %+v", f)
	}

	if err := fs.Commit(path, []byte("package b\n")); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if f := fs.Get(path); !f.Dirty() {
		t.Error("file not dirty after Commit")
	}

	written, err := fs.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if !slices.Equal(written, []string{normalized}) {
		t.Errorf("Flush wrote %v, want %v", written, []string{normalized})
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(onDisk) != "package b\n" {
		t.Errorf("on-disk content = %q, want %q", onDisk, "package b\n")
	}

	if f := fs.Get(path); f.Dirty() {
		t.Error("file still dirty after Flush")
	}
}

func TestFlushSkipsVirtual(t *testing.T) {
	t.Parallel()

	fs := NewFileSet()
	fs.AddVirtual("v.go", []byte("package v\n"))

	if err := fs.Commit("v.go", []byte("package w\n")); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	written, err := fs.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(written) != 0 {
		t.Errorf("Flush wrote %v, want nothing for virtual files", written)
	}
}

func TestCommitUnknownPath(t *testing.T) {
	t.Parallel()

	fs := NewFileSet()

	if err := fs.Commit("missing.go", nil); err == nil {
		t.Error("Commit on unknown path: expected error, got nil")
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()

	fs := NewFileSet()
	fs.AddVirtual("b.go", nil)
	fs.AddVirtual("a.go", nil)

	if got := fs.Paths(); !slices.Equal(got, []string{"a.go", "b.go"}) {
		t.Errorf("Paths() = %v, want sorted order", got)
	}

	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}
