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

package analyzer

import (
	"flag"
	"testing"

	"fillmore-labs.com/asyncname/internal/config"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		flagName string
		value    string
		flag     config.Config
		want     bool
	}{
		{name: "GeneratedOn", flagName: "generated", value: "on", flag: config.IncludeGenerated, want: true},
		{name: "FixOff", flagName: "fix", value: "0", flag: config.SuggestFixes, want: false},
		{name: "InterfacesTrue", flagName: "interfaces", value: "True", flag: config.CheckInterfaces, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := defaultRunOptions()

			var fs flag.FlagSet
			registerFlags(&fs, r)

			if err := fs.Set(tt.flagName, tt.value); err != nil {
				t.Fatalf("Set(%q, %q): %v", tt.flagName, tt.value, err)
			}

			if got := r.behavior.Enabled(tt.flag); got != tt.want {
				t.Errorf("flag %q = %q: got %t, want %t", tt.flagName, tt.value, got, tt.want)
			}

			g, ok := fs.Lookup(tt.flagName).Value.(flag.Getter)
			if !ok {
				t.Fatalf("flag %q does not implement flag.Getter", tt.flagName)
			}

			if got := g.Get(); got != tt.want {
				t.Errorf("Get() = %v, want %t", got, tt.want)
			}
		})
	}
}

func TestParseBoolInvalid(t *testing.T) {
	t.Parallel()

	r := defaultRunOptions()

	var fs flag.FlagSet
	registerFlags(&fs, r)

	if err := fs.Set("fix", "maybe"); err == nil {
		t.Error("Set(\"fix\", \"maybe\"): expected error, got nil")
	}
}
