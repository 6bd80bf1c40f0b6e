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
	"go/types"

	"fillmore-labs.com/asyncname/internal/source"
)

// AsyncSuffix is the naming-convention suffix appended by the rename fix.
const AsyncSuffix = "Async"

// CodeEdit is one proposed text replacement. OldText snapshots the bytes
// the edit expects to replace, enabling staleness detection at apply time.
type CodeEdit struct {
	Path    string      `json:"path"`
	Span    source.Span `json:"span"`
	OldText string      `json:"oldText"`
	NewText string      `json:"newText"`
}

// CodeEditBatch is a compilation-wide transformation. A batch is applied
// atomically by [Apply]: either every edit lands or none does.
type CodeEditBatch struct {
	// Symbol is the fully qualified name of the renamed symbol.
	Symbol string `json:"symbol"`

	// NewName is the candidate name, original simple name + "Async".
	NewName string `json:"newName"`

	// Edits covers every reference location of the symbol, declaration
	// included, ordered by file path and offset.
	Edits []CodeEdit `json:"edits"`
}

// ErrUnfixable is returned by [ComputeFix] for diagnostics that carry no
// resolvable symbol, e.g. deserialized ones or diagnostics computed from a
// different compilation.
var ErrUnfixable = errors.New("diagnostic carries no fixable symbol")

// ConflictError reports that the candidate name collides with an existing
// member of the declaring type or package. The caller decides whether to
// surface it; a conflicting rename is never produced.
type ConflictError struct {
	// Candidate is the rejected new name.
	Candidate string

	// Existing describes the colliding member and its position.
	Existing string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("rename to %q conflicts with existing member %s", e.Candidate, e.Existing)
}

// ComputeFix computes the compilation-wide rename resolving one diagnostic
// of the async-naming rule.
//
// The rename follows semantic identity: every reference recorded for the
// symbol receives exactly one edit. On a name collision a [ConflictError]
// is returned instead of a batch.
func ComputeFix(ctx context.Context, d Diagnostic, comp *Compilation) (*CodeEditBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fn := d.symbol
	if fn == nil {
		return nil, fmt.Errorf("engine: %s: %w", d.Rule, ErrUnfixable)
	}

	oldName := fn.Name()
	newName := oldName + AsyncSuffix

	if existing := comp.findConflict(fn, newName); existing != "" {
		return nil, &ConflictError{Candidate: newName, Existing: existing}
	}

	refs := comp.ReferencesTo(fn)
	if len(refs) == 0 {
		// A symbol without a recorded declaration violates the reference
		// set invariant; nothing safe can be renamed.
		return nil, fmt.Errorf("engine: no references for %s: %w", fn.FullName(), ErrUnfixable)
	}

	edits := make([]CodeEdit, 0, len(refs))
	for _, ref := range refs {
		edits = append(edits, CodeEdit{
			Path:    ref.Path,
			Span:    ref.Span,
			OldText: oldName,
			NewText: newName,
		})
	}

	return &CodeEditBatch{Symbol: fn.FullName(), NewName: newName, Edits: edits}, nil
}

// findConflict returns a description of the member that already occupies
// name in the symbol's declaring type or package, or "" when the name is
// free.
func (c *Compilation) findConflict(fn *types.Func, name string) string {
	sig := fn.Signature()

	if recv := sig.Recv(); recv != nil {
		// Methods collide against the receiver's member set, promoted
		// fields and methods included.
		if obj, _, _ := types.LookupFieldOrMethod(recv.Type(), true, fn.Pkg(), name); obj != nil {
			return c.describe(obj)
		}

		return ""
	}

	if pkg := fn.Pkg(); pkg != nil {
		if obj := pkg.Scope().Lookup(name); obj != nil {
			return c.describe(obj)
		}
	}

	return ""
}

func (c *Compilation) describe(obj types.Object) string {
	if pos := c.fset.Position(obj.Pos()); pos.IsValid() {
		return fmt.Sprintf("%q declared at %s", obj.Name(), pos)
	}

	return fmt.Sprintf("%q", obj.Name())
}
