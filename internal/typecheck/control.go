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

package typecheck

import (
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/typealg"
	"github.com/cone-lang/conec/ir"
)

// checkLogic requires both (or, for `not`, the one) operand of a
// boolean expression to already be bool-typed; unlike arithmetic
// coercion, no implicit numeric-to-bool conversion exists.
func (p *pass) checkLogic(l *ir.Logic) {
	if !typealg.Equal(l.LHS.ValueType(), p.boolType) {
		p.diags.Report(diag.TypeMismatch, l.LHS, "expected bool, got %s", typeName(l.LHS.ValueType()))
	}

	if l.Op != ir.LogicNot && !typealg.Equal(l.RHS.ValueType(), p.boolType) {
		p.diags.Report(diag.TypeMismatch, l.RHS, "expected bool, got %s", typeName(l.RHS.ValueType()))
	}

	l.SetValueType(p.boolType)
}

// checkBlock gives a block the value-type of its final statement when
// that statement is an expression, else void — the phi rule a [ir.If]
// branch's value ultimately feeds into.
func (p *pass) checkBlock(b *ir.Block) {
	n := b.Stmts.Len()
	if n == 0 {
		b.SetValueType(p.pool.NewVoidType(b.Pos()))
		return
	}

	last := b.Stmts.At(n - 1)

	if e, ok := last.(ir.Expr); ok {
		if diverges(last) {
			b.SetValueType(p.pool.NewVoidType(b.Pos()))
			return
		}

		b.SetValueType(e.ValueType())
		return
	}

	b.SetValueType(p.pool.NewVoidType(b.Pos()))
}

// diverges reports whether a block's trailing statement transfers
// control out of the block rather than producing a value for it
// (return/break/continue never contribute a phi type).
func diverges(n ir.Node) bool {
	switch n.(type) {
	case *ir.Return, *ir.Break, *ir.Continue:
		return true
	default:
		return false
	}
}

// checkIf unifies the value-type of every non-diverging branch
// (including the else block, if present) into the if-expression's own
// type. Branches are required to agree exactly; no common-supertype
// rule or coercion is applied to a branch's value.
func (p *pass) checkIf(f *ir.If) {
	var unified ir.Type

	contribute := func(b *ir.Block) {
		if b == nil || diverges(lastStmt(b)) {
			return
		}

		t := b.ValueType()
		if unified == nil {
			unified = t
			return
		}

		if !typealg.Equal(unified, t) {
			p.diags.Report(diag.TypeMismatch, b, "if-branch type %s does not match earlier branch type %s",
				typeName(t), typeName(unified))
		}
	}

	for i := 0; i < f.Blocks.Len(); i++ {
		contribute(f.Blocks.At(i))
	}

	contribute(f.Else)

	if unified == nil {
		unified = p.pool.NewVoidType(f.Pos())
	}

	f.SetValueType(unified)
}

func lastStmt(b *ir.Block) ir.Node {
	if b.Stmts.Len() == 0 {
		return nil
	}

	return b.Stmts.At(b.Stmts.Len() - 1)
}

// checkTupleExpr builds a fresh [ir.TupleType] from its elements'
// already-computed types.
func (p *pass) checkTupleExpr(t *ir.TupleExpr) {
	tt := p.pool.NewTupleType(t.Pos())

	for i := 0; i < t.Elems.Len(); i++ {
		tt.Elems.Append(t.Elems.At(i).ValueType())
	}

	t.SetValueType(tt)
}
