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

// Package awaitable classifies types as members of the awaitable family.
//
// Classification is by exact type identity: a named type (or an
// instantiation of one) whose declared name is exactly "Task" or
// "ValueTask", in any package, with any type arguments. Substring matching
// would misclassify user types like TaskQueue and is deliberately avoided.
package awaitable

import "go/types"

// family is the fixed set of awaitable type names.
var family = map[string]bool{
	"Task":      true,
	"ValueTask": true,
}

// Type reports whether t is an awaitable type.
func Type(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	return family[named.Obj().Name()]
}

// Result reports whether sig's first result type is awaitable.
// Signatures without results are never awaitable.
func Result(sig *types.Signature) bool {
	results := sig.Results()
	if results == nil || results.Len() == 0 {
		return false
	}

	return Type(results.At(0).Type())
}
