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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/diagfmt"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [directory]",
	Short: "Re-check on every source change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Int("jobs", 0, "max parallel file workers (0=auto)")
	watchCmd.Flags().Duration("debounce", 250*time.Millisecond, "delay before re-checking after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}

	dir := targetDir(args)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, dir); err != nil {
		return err
	}

	ctx := cmd.Context()

	// Initial run, then once per settled change burst.
	checkOnce(ctx, cmd, dir, jobs)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, event.Name)
				}
			}

			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}

			if pending && !timer.Stop() {
				<-timer.C
			}

			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			if pending {
				pending = false

				checkOnce(ctx, cmd, dir, jobs)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return watchErr
		}
	}
}

// checkOnce runs one analysis pass and prints the results. Watch keeps
// running on load failures, since half-saved files break loading routinely.
func checkOnce(ctx context.Context, cmd *cobra.Command, dir string, jobs int) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	a, err := analyzeDir(ctx, cmd, dir, jobs)
	if err != nil {
		if !errors.Is(err, engine.ErrNoPackages) {
			fmt.Fprintf(errOut, "asyncname: %v\n", err)
		}

		return
	}

	now := time.Now().Format("15:04:05")

	if len(a.diagnostics) == 0 {
		fmt.Fprintf(out, "[%s] ok\n", now)

		return
	}

	fmt.Fprintf(out, "[%s] %d problems\n", now, len(a.diagnostics))

	opts := diagfmt.Options{Color: useColor(cmd)}
	if err := diagfmt.Pretty(out, a.diagnostics, a.comp.Files(), opts); err != nil {
		fmt.Fprintf(errOut, "asyncname: %v\n", err)
	}
}

// addWatchRecursive registers root and every non-hidden subdirectory.
func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}

		if !entry.IsDir() {
			return nil
		}

		name := entry.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata" || name == "node_modules") {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}
