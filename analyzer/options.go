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
	"log/slog"

	"fillmore-labs.com/asyncname/internal/config"
)

// Option configures specific behavior of a [New] asyncname analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether rename fixes are suggested.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *runOptions) {
	r.behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fixes)
}

// WithInterfaces is an [Option] to configure whether interface method signatures are checked.
func WithInterfaces(interfaces bool) Option { return interfacesOption{interfaces: interfaces} }

type interfacesOption struct{ interfaces bool }

func (o interfacesOption) apply(r *runOptions) {
	r.behavior.Set(config.CheckInterfaces, o.interfaces)
}

func (o interfacesOption) LogAttr() slog.Attr {
	return slog.Bool("interfaces", o.interfaces)
}
