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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/engine/asyncnaming"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [directory]",
	Short: "Rename flagged functions across the project",
	Long: `Fix computes a project-wide rename for every fixable naming violation and
applies all of them in one atomic step. Renames that would collide with an
existing name are skipped with a reason; nothing is written when any staged
edit turns out stale.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().Bool("diff", false, "print every edit")
	fixCmd.Flags().Int("jobs", 0, "max parallel file workers (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	a, err := analyzeDir(ctx, cmd, targetDir(args), jobs)
	if err != nil {
		if errors.Is(err, engine.ErrNoPackages) {
			fmt.Fprintln(cmd.ErrOrStderr(), "asyncname: no Go packages found")

			return nil
		}

		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Collect one batch per fixable diagnostic. Batches rename distinct
	// symbols, so their edits are disjoint and can be committed together.
	var batches []*engine.CodeEditBatch

	var merged engine.CodeEditBatch

	for _, d := range a.diagnostics {
		if d.Rule != asyncnaming.ID {
			continue
		}

		batch, err := engine.ComputeFix(ctx, d, a.comp)

		var conflict *engine.ConflictError

		switch {
		case errors.As(err, &conflict):
			fmt.Fprintf(errOut, "skip %s: %v\n", d.Path, conflict)

			continue

		case errors.Is(err, engine.ErrUnfixable):
			fmt.Fprintf(errOut, "skip %s: %v\n", d.Path, err)

			continue

		case err != nil:
			return err
		}

		batches = append(batches, batch)
		merged.Edits = append(merged.Edits, batch.Edits...)
	}

	if len(batches) == 0 {
		fmt.Fprintln(out, "nothing to fix")

		return nil
	}

	for _, batch := range batches {
		fmt.Fprintf(out, "rename %s -> %s (%d edits)\n", batch.Symbol, batch.NewName, len(batch.Edits))

		if showDiff {
			printEdits(out, a, batch)
		}
	}

	if dryRun {
		fmt.Fprintf(out, "dry run: %d renames not applied\n", len(batches))

		return nil
	}

	if err := engine.Apply(a.comp.Files(), &merged); err != nil {
		var stale *engine.StaleEditError
		if errors.As(err, &stale) {
			return fmt.Errorf("source changed while fixing, nothing written: %w", err)
		}

		return err
	}

	written, err := a.comp.Files().Flush()
	if err != nil {
		return fmt.Errorf("writing fixed files: %w", err)
	}

	fmt.Fprintf(out, "applied %d renames, %d files changed\n", len(batches), len(written))

	return nil
}

func printEdits(w io.Writer, a *analysis, batch *engine.CodeEditBatch) {
	for _, edit := range batch.Edits {
		start, _ := a.comp.Files().Resolve(edit.Path, edit.Span)

		fmt.Fprintf(w, "  %s:%d:%d: %s -> %s\n", edit.Path, start.Line, start.Col, edit.OldText, edit.NewText)
	}
}
