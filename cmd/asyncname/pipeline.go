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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/engine/asyncnaming"
	"fillmore-labs.com/asyncname/internal/load"
	"fillmore-labs.com/asyncname/internal/settings"
)

// analysis is the result of one load-and-analyze pass over a directory.
type analysis struct {
	comp        *engine.Compilation
	diagnostics []engine.Diagnostic
}

// analyzeDir loads the packages under dir, runs the async-naming rule and
// applies severity overrides. Diagnostics for files outside the discovered
// set (ignored or vendored files) are dropped.
func analyzeDir(ctx context.Context, cmd *cobra.Command, dir string, jobs int) (*analysis, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	comp, err := engine.LoadPackages(ctx, root)
	if err != nil {
		return nil, err
	}

	rules := []engine.Rule{asyncnaming.New()}

	diagnostics, err := engine.AnalyzeConfig{Jobs: jobs}.Analyze(ctx, comp, rules)
	if err != nil {
		return nil, err
	}

	overrides, err := settings.Load(configPath(cmd, root))
	if err != nil {
		return nil, err
	}

	diagnostics = overrides.Apply(diagnostics)

	covered, err := load.GoFiles(root)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	kept := diagnostics[:0]

	for _, d := range diagnostics {
		if load.Covered(covered, root, d.Path) {
			kept = append(kept, d)
		}
	}

	return &analysis{comp: comp, diagnostics: kept}, nil
}

// configPath resolves the --config flag, defaulting to the settings file in
// the checked directory.
func configPath(cmd *cobra.Command, root string) string {
	if path, err := cmd.Root().PersistentFlags().GetString("config"); err == nil && path != "" {
		return path
	}

	return filepath.Join(root, settings.File)
}

// targetDir returns the positional directory argument, defaulting to ".".
func targetDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}

	return "."
}
