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

package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/flow"
	"github.com/cone-lang/conec/ir"
)

// newMainFunc builds an `fn main() void { ... }` fixture around body,
// without going through resolve/typecheck (every NameUse.Decl is set
// directly, as those passes would have left it).
func newMainFunc(pool *ir.Pool, prog *ir.Program, body *ir.Block) *ir.FuncDecl {
	fn := pool.NewFuncDecl(ir.NoPos, "main", prog, pool.NewFuncSigType(ir.NoPos, pool.NewVoidType(ir.NoPos)))
	fn.Body = body
	prog.Decls.Append(fn)

	return fn
}

func TestFlowReportsUseAfterMove(t *testing.T) {
	pool := ir.NewPool()
	prog := pool.NewProgram(ir.NoPos)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	x := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermUni)
	x.Type_ = i32
	y := pool.NewVarDecl(ir.NoPos, "y", nil, ir.PermMut)
	y.Type_ = i32
	z := pool.NewVarDecl(ir.NoPos, "z", nil, ir.PermMut)
	z.Type_ = i32

	body := pool.NewBlock(ir.NoPos)

	xUse1 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse1.Decl = x
	yLval := pool.NewNameUse(ir.NoPos, "", "y")
	yLval.Decl = y
	body.Stmts.Append(pool.NewAssign(ir.NoPos, yLval, xUse1, ir.AssignPlain))

	xUse2 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse2.Decl = x
	zLval := pool.NewNameUse(ir.NoPos, "", "z")
	zLval.Decl = z
	body.Stmts.Append(pool.NewAssign(ir.NoPos, zLval, xUse2, ir.AssignPlain))

	newMainFunc(pool, prog, body)

	diags := flow.Run(prog)

	require.Equal(t, 1, diags.Count())
	assert.Equal(t, diag.UnreachableAfterMove, diags.All()[0].Code)
}

func TestFlowAllowsUseAfterReassignment(t *testing.T) {
	pool := ir.NewPool()
	prog := pool.NewProgram(ir.NoPos)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	x := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermUni)
	x.Type_ = i32
	y := pool.NewVarDecl(ir.NoPos, "y", nil, ir.PermMut)
	y.Type_ = i32
	z := pool.NewVarDecl(ir.NoPos, "z", nil, ir.PermMut)
	z.Type_ = i32

	body := pool.NewBlock(ir.NoPos)

	xUse1 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse1.Decl = x
	yLval := pool.NewNameUse(ir.NoPos, "", "y")
	yLval.Decl = y
	body.Stmts.Append(pool.NewAssign(ir.NoPos, yLval, xUse1, ir.AssignPlain))

	xWriteTarget := pool.NewNameUse(ir.NoPos, "", "x")
	xWriteTarget.Decl = x
	body.Stmts.Append(pool.NewAssign(ir.NoPos, xWriteTarget, pool.NewIntLit(ir.NoPos, 7), ir.AssignPlain))

	xUse2 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse2.Decl = x
	zLval := pool.NewNameUse(ir.NoPos, "", "z")
	zLval.Decl = z
	body.Stmts.Append(pool.NewAssign(ir.NoPos, zLval, xUse2, ir.AssignPlain))

	newMainFunc(pool, prog, body)

	diags := flow.Run(prog)

	assert.Equal(t, 0, diags.Count())
}

func TestFlowBorrowDoesNotConsumeTheSource(t *testing.T) {
	pool := ir.NewPool()
	prog := pool.NewProgram(ir.NoPos)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)

	x := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermUni)
	x.Type_ = i32
	ref := pool.NewVarDecl(ir.NoPos, "ref", nil, ir.PermMut)
	refT := pool.NewRefType(ir.NoPos, i32, ir.PermUni, ir.AllocBorrow)
	ref.Type_ = refT
	y := pool.NewVarDecl(ir.NoPos, "y", nil, ir.PermMut)
	y.Type_ = i32

	body := pool.NewBlock(ir.NoPos)

	// &x: a borrow must not itself count as the move that consumes x.
	xUse1 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse1.Decl = x
	borrow := pool.NewAllocate(ir.NoPos, xUse1, ir.AllocBorrow)
	borrow.RefT = refT

	refLval := pool.NewNameUse(ir.NoPos, "", "ref")
	refLval.Decl = ref
	body.Stmts.Append(pool.NewAssign(ir.NoPos, refLval, borrow, ir.AssignPlain))

	// y = x: the first real move of x. Unflagged, since the borrow above
	// never marked x as moved.
	xUse2 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse2.Decl = x
	yLval := pool.NewNameUse(ir.NoPos, "", "y")
	yLval.Decl = y
	body.Stmts.Append(pool.NewAssign(ir.NoPos, yLval, xUse2, ir.AssignPlain))

	newMainFunc(pool, prog, body)

	diags := flow.Run(prog)

	assert.Equal(t, 0, diags.Count())
}

func TestFlowReportsMoveInOneIfBranchReachingUseAfterJoin(t *testing.T) {
	pool := ir.NewPool()
	prog := pool.NewProgram(ir.NoPos)
	i32 := pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32)
	boolT := pool.NewPrimType(ir.NoPos, ir.KindUnsignedInt, 1)

	x := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermUni)
	x.Type_ = i32
	y := pool.NewVarDecl(ir.NoPos, "y", nil, ir.PermMut)
	y.Type_ = i32
	cond := pool.NewVarDecl(ir.NoPos, "cond", nil, ir.PermImm)
	cond.Type_ = boolT

	body := pool.NewBlock(ir.NoPos)

	ifExpr := pool.NewIf(ir.NoPos)
	condUse := pool.NewNameUse(ir.NoPos, "", "cond")
	condUse.Decl = cond
	ifExpr.Conds.Append(condUse)

	thenBlock := pool.NewBlock(ir.NoPos)
	xUse1 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse1.Decl = x
	yLval := pool.NewNameUse(ir.NoPos, "", "y")
	yLval.Decl = y
	thenBlock.Stmts.Append(pool.NewAssign(ir.NoPos, yLval, xUse1, ir.AssignPlain))
	ifExpr.Blocks.Append(thenBlock)

	body.Stmts.Append(ifExpr)

	xUse2 := pool.NewNameUse(ir.NoPos, "", "x")
	xUse2.Decl = x
	zLval := pool.NewNameUse(ir.NoPos, "", "z")
	z := pool.NewVarDecl(ir.NoPos, "z", nil, ir.PermMut)
	z.Type_ = i32
	zLval.Decl = z
	body.Stmts.Append(pool.NewAssign(ir.NoPos, zLval, xUse2, ir.AssignPlain))

	newMainFunc(pool, prog, body)

	diags := flow.Run(prog)

	require.Equal(t, 1, diags.Count())
	assert.Equal(t, diag.UnreachableAfterMove, diags.All()[0].Code)
}
