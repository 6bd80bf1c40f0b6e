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

package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"fillmore-labs.com/asyncname/engine"
	. "fillmore-labs.com/asyncname/internal/settings"
)

func write(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), File)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadApply(t *testing.T) {
	t.Parallel()

	diagnostics := []engine.Diagnostic{
		{Rule: "ASYNC001", Severity: engine.SeverityWarning, Message: "m1"},
		{Rule: "OTHER999", Severity: engine.SeverityWarning, Message: "m2"},
	}

	tests := []struct {
		name      string
		content   string
		want      int
		wantFirst engine.Severity
	}{
		{
			name:      "Promote",
			content:   "[rules]\nASYNC001 = \"error\"\n",
			want:      2,
			wantFirst: engine.SeverityError,
		},
		{
			name:      "Suggestion",
			content:   "[rules]\nASYNC001 = \"suggestion\"\n",
			want:      2,
			wantFirst: engine.SeverityInfo,
		},
		{
			name:      "None",
			content:   "[rules]\nASYNC001 = \"none\"\n",
			want:      1,
			wantFirst: engine.SeverityWarning,
		},
		{
			name:      "Empty",
			content:   "",
			want:      2,
			wantFirst: engine.SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Load(write(t, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			got := s.Apply(diagnostics)
			if len(got) != tt.want {
				t.Fatalf("Apply: got %d diagnostics, want %d", len(got), tt.want)
			}

			if got[0].Severity != tt.wantFirst {
				t.Errorf("first severity = %s, want %s", got[0].Severity, tt.wantFirst)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), File))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}

	in := []engine.Diagnostic{{Rule: "ASYNC001", Severity: engine.SeverityWarning}}
	if got := s.Apply(in); len(got) != 1 || got[0].Severity != engine.SeverityWarning {
		t.Errorf("missing file must leave diagnostics untouched, got %v", got)
	}
}

func TestLoadUnknownSeverity(t *testing.T) {
	t.Parallel()

	if _, err := Load(write(t, "[rules]\nASYNC001 = \"fatal\"\n")); err == nil {
		t.Error("expected error for unknown severity, got nil")
	}
}
