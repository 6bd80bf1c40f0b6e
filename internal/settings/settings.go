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

// Package settings loads per-project severity overrides.
//
// Overrides live in a TOML file and are consumed by the reporting surface,
// never by the rule engine itself: rules always report their default
// severity, and the CLI relabels or drops diagnostics afterwards.
//
//	[rules]
//	ASYNC001 = "error"  # warning | error | suggestion | none
package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/asyncname/engine"
)

// File is the default settings file name, looked up in the checked directory.
const File = ".asyncname.toml"

// ErrUnknownSeverity is returned for severity strings outside the documented set.
var ErrUnknownSeverity = errors.New("unknown severity")

// none drops a rule's diagnostics entirely.
const none = engine.SeverityHidden

// Settings are resolved per-rule severity overrides.
type Settings struct {
	overrides map[string]engine.Severity
}

// Load reads the settings file at path. A missing file yields empty
// settings, since overrides are optional; a malformed file or an unknown
// severity string is an error.
func Load(path string) (*Settings, error) {
	var raw struct {
		Rules map[string]string `toml:"rules"`
	}

	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}

		return nil, fmt.Errorf("settings: %w", err)
	}

	overrides := make(map[string]engine.Severity, len(raw.Rules))

	for rule, value := range raw.Rules {
		severity, err := parseSeverity(value)
		if err != nil {
			return nil, fmt.Errorf("settings: rule %s: %w", rule, err)
		}

		overrides[rule] = severity
	}

	return &Settings{overrides: overrides}, nil
}

// Apply relabels diagnostics according to the overrides. Diagnostics of
// rules overridden to "none" are dropped; everything else keeps its order.
func (s *Settings) Apply(diagnostics []engine.Diagnostic) []engine.Diagnostic {
	if len(s.overrides) == 0 {
		return diagnostics
	}

	out := make([]engine.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		severity, ok := s.overrides[d.Rule]
		if !ok {
			out = append(out, d)

			continue
		}

		if severity == none {
			continue
		}

		out = append(out, d.WithSeverity(severity))
	}

	return out
}

func parseSeverity(value string) (engine.Severity, error) {
	switch value {
	case "warning":
		return engine.SeverityWarning, nil
	case "error":
		return engine.SeverityError, nil
	case "suggestion":
		return engine.SeverityInfo, nil
	case "none":
		return none, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownSeverity, value)
}
