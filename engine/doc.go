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

/*
Package engine implements a two-stage static-analysis pipeline: a rule
engine producing diagnostics and a transformation engine computing and
applying compilation-wide renames.

# Rule engine

[Analyze] runs an explicit, immutable set of rules over an immutable
[Compilation]. Each rule subscribes to the node kinds it wants to visit;
files are analyzed in parallel and the resulting diagnostics are returned
in a deterministic order (file path, then source offset), so repeated runs
on identical input yield identical sequences.

# Transformation engine

[ComputeFix] turns a single [Diagnostic] into a [CodeEditBatch] renaming
the violating symbol across every reference in the compilation, following
semantic identity rather than text. A name collision in the declaring type
or package scope is reported as a [ConflictError] instead of a batch.
[Apply] commits a batch all-or-nothing: a stale or out-of-range edit aborts
the whole apply with a [StaleEditError] before anything is written.

# Front ends

A compilation is produced either by [LoadPackages] (on-disk packages, via
go/packages) or by [CompileSources] (in-memory sources, no toolchain). The
engines depend only on the resulting [Compilation], not on how it was
loaded.
*/
package engine
