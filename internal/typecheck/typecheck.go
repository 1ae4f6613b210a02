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

// Package typecheck is the second of the three semantic passes. It
// runs strictly after [internal/resolve] has bound every [ir.NameUse]
// and requires that pass to have reported zero diagnostics; it assigns
// a [ir.Type] to every [ir.Expr] in the tree, inserting implicit
// [ir.Cast] nodes where a coercion makes an otherwise-mismatched
// expression assignable, and rejects what no coercion can fix.
//
// The pass is driven bottom-up: [internal/dispatch.Walk]'s leave signal
// fires on a node only after every child has already been visited (and
// so already typed), so each node's check can simply read its
// children's ValueType.
package typecheck

import (
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/dispatch"
	"github.com/cone-lang/conec/ir"
)

// pass implements [dispatch.Visitor].
type pass struct {
	pool    *ir.Pool
	diags   *diag.Sink
	curFunc *ir.FuncDecl

	// callCallees marks an Element that is a Call's callee, so its own
	// leave skips the generic checkElement member lookup: checkCall's
	// checkMethodCall does that lookup itself (overload-aware, unlike
	// checkElement's single-candidate Method()) once the call's
	// argument list is available, and running both would report a
	// missing member twice.
	callCallees map[*ir.Element]bool

	defaultInt   *ir.PrimType
	defaultFloat *ir.PrimType
	boolType     *ir.PrimType
}

// Run type-checks every expression in prog, allocating any inserted
// cast nodes from pool (the same pool prog's nodes were allocated
// from), and returns the diagnostics recorded.
func Run(prog *ir.Program, pool *ir.Pool) *diag.Sink {
	p := &pass{
		pool:         pool,
		diags:        &diag.Sink{},
		callCallees:  make(map[*ir.Element]bool),
		defaultInt:   pool.NewPrimType(ir.NoPos, ir.KindSignedInt, 32),
		defaultFloat: pool.NewPrimType(ir.NoPos, ir.KindFloat, 64),
		boolType:     pool.NewPrimType(ir.NoPos, ir.KindUnsignedInt, 1),
	}

	dispatch.Walk(p, prog)

	return p.diags
}

// Visit implements [dispatch.Visitor]. Every node gets its compute step
// run on leave, once its children are typed; [ir.FuncDecl] additionally
// tracks which function's return type is in scope for its nested
// [ir.Return] statements.
func (p *pass) Visit(n ir.Node) dispatch.Visitor {
	if n == nil {
		return nil
	}

	if fn, ok := n.(*ir.FuncDecl); ok {
		prev := p.curFunc
		p.curFunc = fn

		return p.withLeave(func() {
			p.curFunc = prev
		})
	}

	if call, ok := n.(*ir.Call); ok {
		if elem, ok := call.Callee.(*ir.Element); ok {
			p.callCallees[elem] = true
		}
	}

	return p.withLeave(func() { p.compute(n) })
}

func (p *pass) withLeave(leave func()) dispatch.Visitor {
	return &leaveVisitor{pass: p, leave: leave}
}

type leaveVisitor struct {
	pass  *pass
	leave func()
}

func (l *leaveVisitor) Visit(n ir.Node) dispatch.Visitor {
	if n == nil {
		l.leave()
		return nil
	}

	return l.pass.Visit(n)
}

// compute runs the per-kind type rule for n. n's children, if any, are
// already typed by the time this runs.
func (p *pass) compute(n ir.Node) {
	switch t := n.(type) {
	case *ir.VarDecl:
		p.checkVarDecl(t)

	case *ir.TypeDecl:
		// Nothing to infer; the declared type stands as written.

	case *ir.IntLit:
		t.SetValueType(p.defaultInt)

	case *ir.FloatLit:
		t.SetValueType(p.defaultFloat)

	case *ir.StringLit:
		t.SetValueType(p.pool.NewRefType(t.Pos(), p.pool.NewPrimType(t.Pos(), ir.KindUnsignedInt, 8), ir.PermImm, ir.AllocBorrow))

	case *ir.NameUse:
		p.checkNameUse(t)

	case *ir.Call:
		p.checkCall(t)

	case *ir.Assign:
		p.checkAssign(t)

	case *ir.Allocate:
		p.checkAllocate(t)

	case *ir.Deref:
		p.checkDeref(t)

	case *ir.Element:
		if p.callCallees[t] {
			delete(p.callCallees, t)
			break
		}

		p.checkElement(t)

	case *ir.Cast:
		t.SetValueType(t.Target)

	case *ir.SizeOf:
		t.SetValueType(p.pool.NewPrimType(t.Pos(), ir.KindUnsignedInt, 64))

	case *ir.Logic:
		p.checkLogic(t)

	case *ir.Block:
		p.checkBlock(t)

	case *ir.If:
		p.checkIf(t)

	case *ir.TupleExpr:
		p.checkTupleExpr(t)

	case *ir.Return:
		p.checkReturn(t)
	}
}
