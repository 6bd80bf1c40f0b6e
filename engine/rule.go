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

package engine

import (
	"go/types"

	"fillmore-labs.com/asyncname/internal/source"
)

// NodeKind identifies a class of syntax nodes a [Rule] can subscribe to.
type NodeKind uint8

const (
	// KindFuncDecl is a function or method declaration, with or without a body.
	KindFuncDecl NodeKind = iota

	// KindInterfaceMethod is a method signature inside an interface type.
	KindInterfaceMethod
)

//go:generate go tool stringer -type=NodeKind

// RuleMeta is the static metadata a rule declares about itself.
// The ID is the stable, user-facing identifier used for severity overrides.
type RuleMeta struct {
	ID              string
	Doc             string
	DefaultSeverity Severity
	Kinds           []NodeKind
}

// MethodInfo describes one visited method or function declaration.
//
// Symbol is nil when semantic resolution failed for the declaration; rules
// must treat that as "skip", never as an error.
type MethodInfo struct {
	Kind     NodeKind
	Name     string
	Path     string
	NameSpan source.Span
	Symbol   *types.Func
}

// ReportFunc emits one violation for the declaration currently being
// checked. The engine attaches rule metadata and the identifier location.
type ReportFunc func(format string, args ...any)

// Rule is a single diagnostic rule.
//
// Rules are passed to [Analyze] as explicit values; there is no global
// registry. Implementations must be safe for concurrent use: Check is
// called from multiple worker goroutines and must not mutate shared state.
type Rule interface {
	Meta() RuleMeta
	Check(m MethodInfo, report ReportFunc)
}
