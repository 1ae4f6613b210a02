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

// Package sema is the public entry point a parser or driver calls once
// it has a parsed [ir.Program]: it wires the three semantic passes —
// resolve, typecheck, flow — in their fixed order and returns every
// diagnostic any of them recorded.
package sema

import (
	"context"
	"log/slog"
	"runtime/trace"

	"github.com/cone-lang/conec/internal/config"
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/flow"
	"github.com/cone-lang/conec/internal/nametab"
	"github.com/cone-lang/conec/internal/resolve"
	"github.com/cone-lang/conec/internal/typecheck"
	"github.com/cone-lang/conec/ir"
)

// Options configures a [Run]: which passes to execute and which
// ambient run behaviors (tracing, logging) to enable. The zero value
// runs every pass with no extra tracing or logging.
type Options struct {
	Passes   config.BitMask[config.Pass]
	Behavior config.BitMask[config.Behavior]
	Logger   *slog.Logger
}

// DefaultOptions runs the full resolve -> type-check -> flow pipeline
// with no tracing or logging.
func DefaultOptions() Options {
	return Options{Passes: config.NewBitMask(config.AllPasses)}
}

// Result is the outcome of a [Run]: every diagnostic recorded by
// whichever passes ran, and the name table name resolution built (a
// later pass, such as a source-level pretty-printer, may still need
// it after Run returns).
type Result struct {
	Diagnostics []diag.Diagnostic
	Table       *nametab.Table
}

// Errors reports how many diagnostics were recorded. A driver gates
// code generation on this being zero.
func (r *Result) Errors() int {
	return len(r.Diagnostics)
}

// Run executes the semantic pipeline over prog per opts, in the fixed
// order resolve -> typecheck -> flow. A pass that required an earlier
// one's clean output (typecheck needs resolve, flow needs typecheck)
// is skipped once that earlier pass has already reported a diagnostic,
// since its output cannot be trusted.
func Run(ctx context.Context, prog *ir.Program, pool *ir.Pool, opts Options) *Result {
	res := &Result{}

	passes := opts.Passes
	if !passes.Enabled(config.AllPasses) {
		passes = config.NewBitMask(config.AllPasses)
	}

	if passes.Enabled(config.ResolvePass) {
		table, diags := runTraced(ctx, opts, "resolve", func() (*nametab.Table, *diag.Sink) {
			return resolve.Run(prog)
		})

		res.Table = table
		res.Diagnostics = append(res.Diagnostics, diags.All()...)
	}

	if passes.Enabled(config.TypeCheckPass) && len(res.Diagnostics) == 0 {
		_, diags := runTraced(ctx, opts, "typecheck", func() (struct{}, *diag.Sink) {
			return struct{}{}, typecheck.Run(prog, pool)
		})

		res.Diagnostics = append(res.Diagnostics, diags.All()...)
	}

	if passes.Enabled(config.FlowPass) && len(res.Diagnostics) == 0 {
		_, diags := runTraced(ctx, opts, "flow", func() (struct{}, *diag.Sink) {
			return struct{}{}, flow.Run(prog)
		})

		res.Diagnostics = append(res.Diagnostics, diags.All()...)
	}

	return res
}

// runTraced wraps a single pass in a runtime/trace task (when
// [config.TraceRegions] is enabled) and logs its diagnostic count
// (when [config.VerboseLog] is enabled), giving each pass its own
// trace.NewTask/defer task.End span in the run loop.
func runTraced[T any](ctx context.Context, opts Options, name string, fn func() (T, *diag.Sink)) (T, *diag.Sink) {
	if opts.Behavior.Enabled(config.TraceRegions) {
		_, task := trace.NewTask(ctx, name)
		defer task.End()
	}

	result, diags := fn()

	if opts.Behavior.Enabled(config.VerboseLog) && opts.Logger != nil {
		opts.Logger.Log(ctx, slog.LevelInfo, "pass complete", slog.String("pass", name), slog.Int("diagnostics", diags.Count()))
	}

	return result, diags
}
