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
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/diagfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [directory]",
	Short: "Report naming violations without modifying files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel file workers (0=auto)")
	checkCmd.Flags().Bool("strict", false, "treat warnings as build failures")
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	format, err := diagfmt.ParseFormat(formatName)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}

	a, err := analyzeDir(cmd.Context(), cmd, targetDir(args), jobs)
	if err != nil {
		if errors.Is(err, engine.ErrNoPackages) {
			fmt.Fprintln(cmd.ErrOrStderr(), "asyncname: no Go packages found")

			return nil
		}

		return err
	}

	opts := diagfmt.Options{Color: useColor(cmd)}
	if err := diagfmt.Render(cmd.OutOrStdout(), format, a.diagnostics, a.comp.Files(), opts); err != nil {
		return err
	}

	threshold := engine.SeverityError
	if strict {
		threshold = engine.SeverityWarning
	}

	for _, d := range a.diagnostics {
		if d.Severity >= threshold {
			os.Exit(1)
		}
	}

	return nil
}
