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
	"context"
	"reflect"
	"testing"

	. "fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/engine/asyncnaming"
)

const tasksSource = `package tasks

type Task struct{}

type ValueTask[T any] struct{ value T }

type TaskQueue struct{}
`

func compile(t *testing.T, sources map[string]string) *Compilation {
	t.Helper()

	comp, err := CompileSources(t.Context(), sources)
	if err != nil {
		t.Fatalf("CompileSources: %v", err)
	}

	return comp
}

func analyze(t *testing.T, comp *Compilation) []Diagnostic {
	t.Helper()

	diagnostics, err := Analyze(t.Context(), comp, []Rule{asyncnaming.New()})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	return diagnostics
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		src  string
		want []string // flagged method names, in document order
	}{
		{
			name: "unsuffixed task",
			src: `package a

import "tasks"

func FetchData() tasks.Task { return tasks.Task{} }
`,
			want: []string{"FetchData"},
		},
		{
			name: "suffixed task",
			src: `package a

import "tasks"

func GetCountAsync() tasks.ValueTask[int] { return tasks.ValueTask[int]{} }
`,
			want: nil,
		},
		{
			name: "non-awaitable results",
			src: `package a

func Process() {}

func Count() int { return 0 }
`,
			want: nil,
		},
		{
			name: "name containing task is not awaitable",
			src: `package a

import "tasks"

func Enqueue() tasks.TaskQueue { return tasks.TaskQueue{} }
`,
			want: nil,
		},
		{
			name: "method and interface method",
			src: `package a

import "tasks"

type Service struct{}

func (Service) Load() tasks.Task { return tasks.Task{} }

type Client interface {
	Get() tasks.ValueTask[string]
	Close() error
}
`,
			want: []string{"Load", "Get"},
		},
		{
			name: "generic function checked on declared name",
			src: `package a

import "tasks"

func All[T any]() tasks.ValueTask[T] { return tasks.ValueTask[T]{} }
`,
			want: []string{"All"},
		},
		{
			name: "bodyless declaration still checked",
			src: `package a

import "tasks"

func Stub() tasks.Task
`,
			want: []string{"Stub"},
		},
		{
			name: "value task with generic argument",
			src: `package a

import "tasks"

func Collect() tasks.ValueTask[[]byte] { return tasks.ValueTask[[]byte]{} }
`,
			want: []string{"Collect"},
		},
		{
			name: "function literals are not visited",
			src: `package a

import "tasks"

var fetch = func() tasks.Task { return tasks.Task{} }
`,
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			comp := compile(t, map[string]string{
				"tasks/tasks.go": tasksSource,
				"a/a.go":         tc.src,
			})

			diagnostics := analyze(t, comp)

			var got []string
			for _, d := range diagnostics {
				if d.Rule != asyncnaming.ID {
					t.Errorf("Unexpected rule ID %q", d.Rule)
				}

				if d.Severity != SeverityWarning {
					t.Errorf("Got severity %v, want %v", d.Severity, SeverityWarning)
				}

				f := comp.Files().Get(d.Path)
				if f == nil {
					t.Fatalf("Diagnostic path %q not in file set", d.Path)
				}

				got = append(got, string(f.Content[d.Span.Start:d.Span.End]))
			}

			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Got diagnostics for %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAnalyzeMessage(t *testing.T) {
	t.Parallel()

	comp := compile(t, map[string]string{
		"tasks/tasks.go": tasksSource,
		"a/a.go": `package a

import "tasks"

func FetchData() tasks.Task { return tasks.Task{} }
`,
	})

	diagnostics := analyze(t, comp)

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	const want = "Method 'FetchData' returns an awaitable type but its name does not end with 'Async'"
	if got := diagnostics[0].Message; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}
}

func TestAnalyzeDeterminism(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"tasks/tasks.go": tasksSource,
		"a/one.go": `package a

import "tasks"

func First() tasks.Task { return tasks.Task{} }

func Second() tasks.Task { return tasks.Task{} }
`,
		"a/two.go": `package a

import "tasks"

func Third() tasks.Task { return tasks.Task{} }
`,
		"b/b.go": `package b

import "tasks"

func Fourth() tasks.Task { return tasks.Task{} }
`,
	}

	comp := compile(t, sources)

	first := analyze(t, comp)
	second := analyze(t, comp)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated runs differ:\n%v\n%v", first, second)
	}

	if len(first) != 4 {
		t.Fatalf("Got %d diagnostics, want 4", len(first))
	}

	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if prev.Path > cur.Path || (prev.Path == cur.Path && prev.Span.Start > cur.Span.Start) {
			t.Errorf("Diagnostics out of order: %s:%s before %s:%s", prev.Path, prev.Span, cur.Path, cur.Span)
		}
	}
}

func TestAnalyzeCancellation(t *testing.T) {
	t.Parallel()

	comp := compile(t, map[string]string{
		"tasks/tasks.go": tasksSource,
		"a/a.go": `package a

import "tasks"

func FetchData() tasks.Task { return tasks.Task{} }
`,
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Analyze(ctx, comp, []Rule{asyncnaming.New()}); err == nil {
		t.Error("Expected error from canceled context")
	}
}

func TestAnalyzeNoRules(t *testing.T) {
	t.Parallel()

	comp := compile(t, map[string]string{
		"tasks/tasks.go": tasksSource,
	})

	diagnostics, err := Analyze(t.Context(), comp, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics, want 0", len(diagnostics))
	}
}
