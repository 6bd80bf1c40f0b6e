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

// Package asyncnaming provides the ASYNC001 naming-convention rule:
// functions and methods returning an awaitable type must carry the
// "Async" name suffix.
package asyncnaming

import (
	"strings"

	"fillmore-labs.com/asyncname/engine"
	"fillmore-labs.com/asyncname/internal/awaitable"
)

// ID is the stable rule identifier.
const ID = "ASYNC001"

// message is substituted with the method's simple name at report time.
const message = "Method '%s' returns an awaitable type but its name does not end with 'Async'"

// New returns the ASYNC001 rule.
func New() engine.Rule {
	return rule{}
}

type rule struct{}

// Meta implements [engine.Rule].
func (rule) Meta() engine.RuleMeta {
	return engine.RuleMeta{
		ID:              ID,
		Doc:             "functions returning Task or ValueTask must be named with the Async suffix",
		DefaultSeverity: engine.SeverityWarning,
		Kinds:           []engine.NodeKind{engine.KindFuncDecl, engine.KindInterfaceMethod},
	}
}

// Check implements [engine.Rule].
//
// The declared name is checked before any generic instantiation, and
// bodyless declarations (interface methods, forward declarations) are
// checked like any other: the convention is about the signature, not the
// implementation.
func (rule) Check(m engine.MethodInfo, report engine.ReportFunc) {
	if m.Symbol == nil {
		return // unresolved declaration, skip without diagnostic
	}

	if strings.HasSuffix(m.Name, engine.AsyncSuffix) {
		return
	}

	if !awaitable.Result(m.Symbol.Signature()) {
		return
	}

	report(message, m.Name)
}
