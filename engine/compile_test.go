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

package engine_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/engine/asyncnaming"
)

func TestCompileSourcesImportCycle(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"a/a.go": "package a\n\nimport _ \"b\"\n",
		"b/b.go": "package b\n\nimport _ \"a\"\n",
	}

	if _, err := CompileSources(t.Context(), sources); !errors.Is(err, ErrImportCycle) {
		t.Errorf("CompileSources: got %v, want ErrImportCycle", err)
	}
}

func TestCompileSourcesEmpty(t *testing.T) {
	t.Parallel()

	if _, err := CompileSources(t.Context(), nil); !errors.Is(err, ErrNoPackages) {
		t.Errorf("CompileSources: got %v, want ErrNoPackages", err)
	}
}

// A file with an unresolvable import still analyzes: declarations whose
// symbols resolved are checked, the rest are skipped without diagnostics.
func TestCompileSourcesUnresolvedImport(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"tasks/tasks.go": tasksSource,
		"app/app.go": `package app

import (
	"nonexistent/pkg"
	"tasks"
)

func Fetch() tasks.Task {
	return tasks.Task{}
}

func Mystery() pkg.Thing {
	return pkg.Thing{}
}
`,
	}

	comp, err := CompileSources(t.Context(), sources)
	if err != nil {
		t.Fatalf("CompileSources: %v", err)
	}

	diagnostics, err := Analyze(t.Context(), comp, []Rule{asyncnaming.New()})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1 (only Fetch)", len(diagnostics))
	}

	if d := diagnostics[0]; d.Path != "app/app.go" || d.Rule != asyncnaming.ID {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}

func TestCompileSourcesSyntaxError(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"tasks/tasks.go": tasksSource,
		"app/good.go":    "package app\n\nimport \"tasks\"\n\nfunc Run() tasks.Task {\n\treturn tasks.Task{}\n}\n",
		"app/broken.go":  "package app\n\nfunc !!!\n",
	}

	comp, err := CompileSources(t.Context(), sources)
	if err != nil {
		t.Fatalf("CompileSources: %v", err)
	}

	diagnostics, err := Analyze(t.Context(), comp, []Rule{asyncnaming.New()})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Errorf("got %d diagnostics, want 1 from the parseable file", len(diagnostics))
	}
}
