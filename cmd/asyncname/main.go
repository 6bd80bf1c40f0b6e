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

// Command asyncname checks that functions returning awaitable types carry
// the Async name suffix, and renames the ones that don't.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is overridden at release time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "asyncname",
	Short: "Async naming convention checker",
	Long:  `asyncname flags functions and methods that return an awaitable type (Task, ValueTask) without the conventional "Async" name suffix, and can rename them across a project.`,

	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "severity override file (default <dir>/.asyncname.toml)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// useColor resolves the --color flag against the terminal state.
func useColor(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}

	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}
