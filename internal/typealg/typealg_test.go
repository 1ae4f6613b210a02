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

package typealg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cone-lang/conec/internal/typealg"
	"github.com/cone-lang/conec/ir"
)

func TestEqualPrimTypes(t *testing.T) {
	pool := ir.NewPool()
	i32a := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	i32b := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	i64 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 64)

	assert.True(t, typealg.Equal(i32a, i32b))
	assert.False(t, typealg.Equal(i32a, i64))
}

func TestEqualStructTypesAreNominal(t *testing.T) {
	pool := ir.NewPool()
	a := pool.NewStructType(ir.NoPos)
	b := pool.NewStructType(ir.NoPos)

	assert.True(t, typealg.Equal(a, a))
	assert.False(t, typealg.Equal(a, b))
}

func TestEqualRefTypesComparePermAndElem(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	refImm := pool.NewRefType(ir.NoPos, i32, ir.PermImm, ir.AllocBorrow)
	refImm2 := pool.NewRefType(ir.NoPos, i32, ir.PermImm, ir.AllocBorrow)
	refMut := pool.NewRefType(ir.NoPos, i32, ir.PermMut, ir.AllocBorrow)

	assert.True(t, typealg.Equal(refImm, refImm2))
	assert.False(t, typealg.Equal(refImm, refMut))
}

func TestEqualNilHandling(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	assert.True(t, typealg.Equal(nil, nil))
	assert.False(t, typealg.Equal(nil, i32))
}

func TestCoerceWidensIntToWiderInt(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	i64 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 64)

	lit := pool.NewIntLit(ir.NoPos, 7)
	lit.SetValueType(i32)

	var slot ir.Expr = lit
	ok := typealg.Coerce(pool, i64, &slot)

	require.True(t, ok)
	cast, isCast := slot.(*ir.Cast)
	require.True(t, isCast)
	assert.Same(t, ir.Type(i64), cast.ValueType())
	assert.Same(t, ir.Expr(lit), cast.Inner)
}

func TestCoerceNoOpWhenAlreadyEqual(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	lit := pool.NewIntLit(ir.NoPos, 7)
	lit.SetValueType(i32)

	var slot ir.Expr = lit
	ok := typealg.Coerce(pool, i32, &slot)

	require.True(t, ok)
	assert.Same(t, ir.Expr(lit), slot)
}

func TestCoerceRejectsNarrowing(t *testing.T) {
	pool := ir.NewPool()
	i64 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 64)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	lit := pool.NewIntLit(ir.NoPos, 7)
	lit.SetValueType(i64)

	var slot ir.Expr = lit
	ok := typealg.Coerce(pool, i32, &slot)

	assert.False(t, ok)
	assert.Same(t, ir.Expr(lit), slot)
}

func TestCoerceWidensUnsignedToWiderSigned(t *testing.T) {
	pool := ir.NewPool()
	u8 := pool.NewPrimType(ir.NoPos, ir.KindUnsignedInt, 8)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	lit := pool.NewIntLit(ir.NoPos, 7)
	lit.SetValueType(u8)

	var slot ir.Expr = lit
	ok := typealg.Coerce(pool, i32, &slot)

	assert.True(t, ok)
}

func TestCoerceIntToFloat(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	f64 := pool.NewPrimType(ir.NoPos, ir.KindFloat, 64)

	lit := pool.NewIntLit(ir.NoPos, 7)
	lit.SetValueType(i32)

	var slot ir.Expr = lit
	ok := typealg.Coerce(pool, f64, &slot)

	assert.True(t, ok)
}

func TestDerefUnwrapsReference(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	ref := pool.NewRefType(ir.NoPos, i32, ir.PermImm, ir.AllocBorrow)

	elem, ok := typealg.Deref(ref)

	require.True(t, ok)
	assert.Same(t, ir.Type(i32), elem)
}

func TestDerefRejectsNonReference(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	_, ok := typealg.Deref(i32)

	assert.False(t, ok)
}

func TestIsNumeric(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	st := pool.NewStructType(ir.NoPos)

	assert.True(t, typealg.IsNumeric(i32))
	assert.False(t, typealg.IsNumeric(st))
}

func sigOf(pool *ir.Pool, ret ir.Type, params ...ir.Type) *ir.FuncSigType {
	sig := pool.NewFuncSigType(ir.NoPos, ret)

	for i, p := range params {
		v := pool.NewVarDecl(ir.NoPos, "p", nil, ir.PermImm)
		v.Type_ = p
		sig.Params.Append("p", v)
		_ = i
	}

	return sig
}

func argOf(pool *ir.Pool, t ir.Type) ir.Expr {
	lit := pool.NewIntLit(ir.NoPos, 0)
	lit.SetValueType(t)

	return lit
}

func TestScoreExactMatch(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	sig := sigOf(pool, i32, i32)
	args := []ir.Expr{argOf(pool, i32)}

	assert.Equal(t, 1, typealg.Score(sig, args))
}

func TestScoreRejectsArityMismatch(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	sig := sigOf(pool, i32, i32, i32)
	args := []ir.Expr{argOf(pool, i32)}

	assert.Equal(t, 0, typealg.Score(sig, args))
}

func TestScoreCountsCoercions(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	i64 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 64)
	sig := sigOf(pool, i64, i64)
	args := []ir.Expr{argOf(pool, i32)}

	assert.Equal(t, 2, typealg.Score(sig, args))
}

func TestSelectPrefersExactOverCoercedAndBreaksTiesFirstDeclared(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	i64 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 64)

	exactDecl := &ir.FuncDecl{Name: "f"}
	coercedDecl := &ir.FuncDecl{Name: "f"}

	candidates := []typealg.Candidate{
		{Decl: coercedDecl, Sig: sigOf(pool, i64, i64)},
		{Decl: exactDecl, Sig: sigOf(pool, i32, i32)},
		{Decl: &ir.FuncDecl{Name: "f"}, Sig: sigOf(pool, i32, i32)},
	}
	args := []ir.Expr{argOf(pool, i32)}

	chosen, score, ok := typealg.Select(candidates, args)

	require.True(t, ok)
	assert.Equal(t, 1, score)
	assert.Same(t, exactDecl, chosen.Decl)
}

func TestSelectRejectsWhenNoCandidateScores(t *testing.T) {
	pool := ir.NewPool()
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	st := pool.NewStructType(ir.NoPos)

	candidates := []typealg.Candidate{
		{Decl: &ir.FuncDecl{Name: "f"}, Sig: sigOf(pool, i32, st)},
	}
	args := []ir.Expr{argOf(pool, i32)}

	_, _, ok := typealg.Select(candidates, args)

	assert.False(t, ok)
}
