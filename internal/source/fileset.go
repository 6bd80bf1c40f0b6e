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

package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"fortio.org/safecast"
)

// File is a single source file held by a [FileSet].
type File struct {
	Path    string
	Content []byte

	virtual bool
	dirty   bool
	lineIdx []uint32
}

// Virtual reports whether the file has no disk backing.
func (f *File) Virtual() bool {
	return f.virtual
}

// Dirty reports whether the content has been modified since load.
func (f *File) Dirty() bool {
	return f.dirty
}

// FileSet holds the source text of a compilation.
//
// It is the single owner of file content: analysis reads from it, and the
// apply step commits replacement buffers back into it. Paths are normalized
// to slash-separated form so diagnostics sort identically on all platforms.
type FileSet struct {
	files map[string]*File
}

// NewFileSet creates an empty [FileSet].
func NewFileSet() *FileSet {
	return &FileSet{files: make(map[string]*File)}
}

// Load reads a file from disk into the set.
func (fs *FileSet) Load(path string) error {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fs.files[normalize(path)] = &File{Path: normalize(path), Content: content}

	return nil
}

// AddVirtual adds an in-memory file. Virtual files are never flushed to disk.
func (fs *FileSet) AddVirtual(path string, content []byte) {
	fs.files[normalize(path)] = &File{Path: normalize(path), Content: content, virtual: true}
}

// Get returns the file for path, or nil when the path is not in the set.
func (fs *FileSet) Get(path string) *File {
	return fs.files[normalize(path)]
}

// Len returns the number of files in the set.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Paths returns all file paths in sorted order.
func (fs *FileSet) Paths() []string {
	paths := make([]string, 0, len(fs.files))
	for path := range fs.files {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// Commit replaces the content of path. The file is marked dirty and its
// line index is discarded.
func (fs *FileSet) Commit(path string, content []byte) error {
	f := fs.files[normalize(path)]
	if f == nil {
		return fmt.Errorf("source: no file %q in set", path)
	}

	f.Content = content
	f.dirty = true
	f.lineIdx = nil

	return nil
}

// Flush writes all dirty non-virtual files back to disk and clears their
// dirty flag. It returns the paths written.
func (fs *FileSet) Flush() ([]string, error) {
	var written []string

	for _, path := range fs.Paths() {
		f := fs.files[path]
		if !f.dirty || f.virtual {
			continue
		}

		if err := os.WriteFile(filepath.FromSlash(path), f.Content, 0o644); err != nil { //nolint:gosec
			return written, err
		}

		f.dirty = false
		written = append(written, path)
	}

	return written, nil
}

// Resolve converts a span within path into line/column positions.
// The zero value is returned for unknown paths or out-of-range spans.
func (fs *FileSet) Resolve(path string, span Span) (start, end LineCol) {
	f := fs.files[normalize(path)]
	if f == nil {
		return LineCol{}, LineCol{}
	}

	idx := f.lines()

	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// lines returns the lazily-built line index: byte offsets of line starts.
func (f *File) lines() []uint32 {
	if f.lineIdx != nil {
		return f.lineIdx
	}

	idx := []uint32{0}

	for off, b := range f.Content {
		if b == '\n' {
			next, err := safecast.Conv[uint32](off + 1)
			if err != nil {
				break // file longer than 4 GiB, positions are best-effort
			}

			idx = append(idx, next)
		}
	}

	f.lineIdx = idx

	return idx
}

func toLineCol(idx []uint32, off uint32) LineCol {
	line, found := slices.BinarySearch(idx, off)
	if !found {
		line--
	}

	if line < 0 || line >= len(idx) {
		return LineCol{}
	}

	lineNo, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		return LineCol{}
	}

	return LineCol{Line: lineNo, Col: off - idx[line] + 1}
}

func normalize(path string) string {
	return filepath.ToSlash(path)
}
