// Copyright 2026 The Cone Authors.
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

package config

// Pass selects which semantic passes a run executes. A front end that
// only wants syntax-level diagnostics from name resolution can disable
// the later passes; [sema.Run] defaults to running all three.
type Pass uint8

const (
	// ResolvePass runs name resolution.
	ResolvePass Pass = 1 << iota
	// TypeCheckPass runs type checking. It requires ResolvePass's output
	// and is skipped automatically if name resolution reported any
	// diagnostic.
	TypeCheckPass
	// FlowPass runs move/copy/borrow flow analysis. It requires
	// TypeCheckPass's output and is likewise skipped after any earlier
	// diagnostic.
	FlowPass
)

// AllPasses runs the full resolve -> type-check -> flow pipeline.
const AllPasses = ResolvePass | TypeCheckPass | FlowPass

// Behavior toggles ambient run behaviors that don't change which passes
// run, only how they report.
type Behavior uint8

const (
	// TraceRegions wraps each pass in a runtime/trace task, so a
	// `go tool trace` capture of a compile shows per-pass wall time.
	TraceRegions Behavior = 1 << iota
	// VerboseLog emits a structured log line per pass transition in
	// addition to diagnostics.
	VerboseLog
)
