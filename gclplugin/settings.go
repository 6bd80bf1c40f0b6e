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

package gclplugin

import asyncname "fillmore-labs.com/asyncname/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero"`
	// Fix enables suggested rename fixes.
	Fix *bool `json:"fix,omitzero"`
	// Interfaces enables checks of interface method signatures.
	Interfaces *bool `json:"interfaces,omitzero"`
}

// Options converts [Settings] into a list of [asyncname.Option] for the asyncname analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []asyncname.Option {
	var opts []asyncname.Option

	opts = appendOption(opts, s.Generated, asyncname.WithGenerated)
	opts = appendOption(opts, s.Fix, asyncname.WithFixes)
	opts = appendOption(opts, s.Interfaces, asyncname.WithInterfaces)

	return opts
}

// appendOption appends a non-nil setting to an [asyncname.Option] list.
func appendOption[T any](opts []asyncname.Option, value *T, constructor func(T) asyncname.Option) []asyncname.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
