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

// Command conec is the semantic-analysis front end's CLI driver: it
// reads a source file, hands it to a [Frontend] to produce an
// [ir.Program], then runs [sema.Run] over the result and reports every
// diagnostic.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cone-lang/conec/internal/config"
	"github.com/cone-lang/conec/ir"
	"github.com/cone-lang/conec/sema"
)

// Exit codes: 0 a clean run, 1 one or more semantic diagnostics, 2 a
// usage or I/O error that never reached the semantic passes at all.
const (
	exitOK    = 0
	exitDiags = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var verbose, trace bool

	root := &cobra.Command{
		Use:          "conec <sourcefile>",
		Short:        "Semantic analysis front end for Cone source files",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	root.SetArgs(args)
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each pass's diagnostic count")
	root.Flags().BoolVar(&trace, "trace", false, "wrap each pass in a runtime/trace task")

	exitCode := exitOK

	root.RunE = func(cmd *cobra.Command, cmdArgs []string) error {
		code, err := compile(cmdArgs[0], verbose, trace)
		exitCode = code
		return err
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "conec:", err)
		if exitCode == exitOK {
			exitCode = exitUsage
		}
	}

	return exitCode
}

// compile runs the whole pipeline for a single source file and prints
// every diagnostic sema.Run collects. It returns the process exit code
// alongside any usage-level error (file I/O, the stub Frontend) that
// cobra should report separately from a clean semantic-diagnostic run.
func compile(filename string, verbose, trace bool) (int, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return exitUsage, err
	}

	pool := ir.NewPool()

	var fe Frontend = unimplementedFrontend{}

	prog, err := fe.Parse(pool, filename, src)
	if err != nil {
		return exitUsage, err
	}

	opts := sema.DefaultOptions()
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		opts.Behavior.Enable(config.VerboseLog)
	}
	if trace {
		opts.Behavior.Enable(config.TraceRegions)
	}

	res := sema.Run(context.Background(), prog, pool, opts)
	for _, d := range res.Diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if res.Errors() > 0 {
		return exitDiags, nil
	}

	return exitOK, nil
}
