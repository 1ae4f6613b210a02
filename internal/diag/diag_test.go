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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/ir"
)

func TestSinkAccumulatesAndContinues(t *testing.T) {
	var s diag.Sink
	pool := ir.NewPool()
	lit := pool.NewIntLit(ir.NoPos, 1)

	s.Report(diag.TypeMismatch, lit, "bad type %s", "i32")
	s.Report(diag.UnresolvedName, lit, "no such name %q", "x")

	require.Equal(t, 2, s.Count())

	all := s.All()
	assert.Equal(t, diag.TypeMismatch, all[0].Code)
	assert.Equal(t, "bad type i32", all[0].Message)
	assert.Equal(t, diag.UnresolvedName, all[1].Code)
	assert.Equal(t, `no such name "x"`, all[1].Message)
}

func TestSinkInternalRecordsInternalErrorCode(t *testing.T) {
	var s diag.Sink
	pool := ir.NewPool()
	lit := pool.NewIntLit(ir.NoPos, 1)

	s.Internal(lit, "unreachable: %s", "compiler bug")

	require.Equal(t, 1, s.Count())
	assert.Equal(t, diag.InternalError, s.All()[0].Code)
}

func TestZeroSinkHasNoDiagnostics(t *testing.T) {
	var s diag.Sink

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.All())
}

func TestCodeStringCoversEveryClosedEnumValue(t *testing.T) {
	names := map[diag.Code]string{
		diag.DuplicateName:        "DuplicateName",
		diag.UnresolvedName:       "UnresolvedName",
		diag.MissingType:          "MissingType",
		diag.TypeMismatch:         "TypeMismatch",
		diag.PermMismatch:         "PermMismatch",
		diag.ArityMismatch:        "ArityMismatch",
		diag.NoSuchMember:         "NoSuchMember",
		diag.NoMethod:             "NoMethod",
		diag.NotCallable:          "NotCallable",
		diag.NotAssignable:        "NotAssignable",
		diag.NotDereferenceable:   "NotDereferenceable",
		diag.UnreachableAfterMove: "UnreachableAfterMove",
		diag.AmbiguousOverload:    "AmbiguousOverload",
		diag.BadReturnArity:       "BadReturnArity",
		diag.InternalError:        "InternalError",
	}

	for code, want := range names {
		assert.Equal(t, want, code.String())
	}
}

func TestDiagnosticStringFormat(t *testing.T) {
	d := diag.Diagnostic{Code: diag.TypeMismatch, Pos: ir.NoPos, Message: "oops"}

	assert.Equal(t, ir.NoPos.String()+": TypeMismatch: oops", d.String())
}
