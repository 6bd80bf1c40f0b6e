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
	"fmt"
	"slices"
	"sort"

	"fillmore-labs.com/asyncname/internal/source"
)

// StaleEditError reports that a batch no longer matches the source it was
// computed against. The apply was aborted before any write; recompute the
// fix against a fresh compilation.
type StaleEditError struct {
	Path   string
	Span   source.Span
	Reason string
}

func (e *StaleEditError) Error() string {
	return fmt.Sprintf("stale edit in %s at %s: %s; recompute the fix", e.Path, e.Span, e.Reason)
}

// Apply commits a batch into the file set, all-or-nothing.
//
// Every file's replacement buffer is staged and validated first: an edit
// whose span is out of range, overlaps another edit, or no longer covers
// its recorded OldText aborts the whole apply with a [StaleEditError].
// Only when every file staged cleanly are the buffers committed.
func Apply(fs *source.FileSet, batch *CodeEditBatch) error {
	byFile := make(map[string][]CodeEdit)
	for _, edit := range batch.Edits {
		byFile[edit.Path] = append(byFile[edit.Path], edit)
	}

	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	staged := make(map[string][]byte, len(byFile))

	for _, path := range paths {
		buf, err := stageFile(fs, path, byFile[path])
		if err != nil {
			return err
		}

		staged[path] = buf
	}

	for _, path := range paths {
		if err := fs.Commit(path, staged[path]); err != nil {
			return err
		}
	}

	return nil
}

// stageFile produces the replacement buffer for one file without touching
// the file set.
func stageFile(fs *source.FileSet, path string, edits []CodeEdit) ([]byte, error) {
	f := fs.Get(path)
	if f == nil {
		return nil, &StaleEditError{Path: path, Reason: "file is no longer part of the compilation"}
	}

	content := f.Content

	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Span.Start != edits[j].Span.Start {
			return edits[i].Span.Start < edits[j].Span.Start
		}

		return edits[i].Span.End < edits[j].Span.End
	})

	edits = slices.CompactFunc(edits, func(a, b CodeEdit) bool { return a == b })

	for i, edit := range edits {
		start, end := int(edit.Span.Start), int(edit.Span.End)

		if start > end || end > len(content) {
			return nil, &StaleEditError{Path: path, Span: edit.Span, Reason: "edit span out of range"}
		}

		if i > 0 && edits[i-1].Span.End > edit.Span.Start {
			return nil, &StaleEditError{Path: path, Span: edit.Span, Reason: "overlapping edits"}
		}

		if string(content[start:end]) != edit.OldText {
			return nil, &StaleEditError{Path: path, Span: edit.Span, Reason: "source changed since the fix was computed"}
		}
	}

	// All spans index the original content, so apply back to front.
	working := slices.Clone(content)
	for i := len(edits) - 1; i >= 0; i-- {
		edit := edits[i]
		working = slices.Concat(working[:edit.Span.Start], []byte(edit.NewText), working[edit.Span.End:])
	}

	return working, nil
}
