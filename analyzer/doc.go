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

// Package analyzer implements the asyncname static analysis pass.
//
// # Overview
//
// Asyncname flags functions and methods that return an awaitable type
// (a type named Task or ValueTask, from any package) without carrying the
// conventional "Async" name suffix, and suggests a rename fix covering
// the declaration and every reference in the analyzed packages.
//
// # Example
//
// Before:
//
//	func FetchData() tasks.Task { ... }
//
//	result := FetchData()
//
// After applying asyncname's suggested fix:
//
//	func FetchDataAsync() tasks.Task { ... }
//
//	result := FetchDataAsync()
//
// # Classification
//
// A return type is awaitable when the first result resolves to a named
// type whose declared name is exactly Task or ValueTask, with any type
// arguments. Matching is by type identity, never by substring, so types
// like TaskQueue are not flagged. Method signatures inside interface
// types are checked as well; a fix is only suggested when the new name is
// free in the declaring type or package scope.
package analyzer
