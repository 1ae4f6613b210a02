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

// Package flow is the third and last semantic pass: copy/move/borrow
// categorization. It runs strictly after [internal/typecheck] has
// typed every expression, and per function body builds one
// [reach.Graph] of the body's control flow, then walks it once more in
// execution order to classify every uni-permission name-use as a move
// (consuming, unless it happens inside a borrow) and flags a later use
// of an already-moved binding reachable, in that graph, from the point
// it was moved.
//
// Only three categories are implemented — copy, move, borrow — and
// only the move-after-use check; alias-overlap checking between live
// borrows is not (see DESIGN.md's Open Question 2).
package flow

import (
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/reach"
	"github.com/cone-lang/conec/internal/seq"
	"github.com/cone-lang/conec/ir"
)

// eventKind distinguishes the three things that can happen to a
// variable binding at a point in the flow graph.
type eventKind uint8

const (
	evRead eventKind = iota
	evMove
	evWrite
)

type event struct {
	kind  eventKind
	decl  *ir.VarDecl
	point reach.Point
	node  ir.Node
}

// pass holds per-function state while walking one body; Run creates a
// fresh one for each [ir.FuncDecl].
type pass struct {
	diags   *diag.Sink
	builder *reach.Builder
	events  []event
}

// Run checks every function body in prog and returns the diagnostics
// recorded.
func Run(prog *ir.Program) *diag.Sink {
	diags := &diag.Sink{}
	walkDecls(diags, prog.Decls.Slice())

	return diags
}

func walkDecls(diags *diag.Sink, decls []ir.Decl) {
	for _, d := range decls {
		switch t := d.(type) {
		case *ir.FuncDecl:
			checkFunc(diags, t)

		case *ir.ModuleDecl:
			walkDecls(diags, namedDeclSlice(t.Decls))

		case *ir.TypeDecl:
			if st, ok := t.Type_.(*ir.StructType); ok {
				for i := 0; i < st.Methods.Len(); i++ {
					_, m := st.Methods.At(i)
					checkFunc(diags, m)
				}
			}
		}
	}
}

func namedDeclSlice(decls seq.Named[ir.Decl]) []ir.Decl {
	return decls.Slice()
}

func checkFunc(diags *diag.Sink, fn *ir.FuncDecl) {
	if fn.Body == nil {
		return
	}

	p := &pass{diags: diags, builder: reach.NewBuilder()}

	entry := p.builder.Point()
	p.walkBlock(fn.Body, entry)

	graph := p.builder.Build()
	p.checkMoves(graph)
}

// walkBlock walks b's statements in execution order starting at entry,
// returning the point execution reaches if it falls off the end of the
// block normally (diverges is true when one of b's own top-level
// statements is a return/break/continue, in which case the returned
// point has no meaningful successor and callers should not connect it
// forward; an if whose every branch diverges does not set it).
func (p *pass) walkBlock(b *ir.Block, entry reach.Point) (tail reach.Point, diverges bool) {
	prev := entry

	for i := 0; i < b.Stmts.Len(); i++ {
		stmt := b.Stmts.At(i)

		pt := p.builder.Point()
		p.builder.Edge(prev, pt)

		switch s := stmt.(type) {
		case *ir.If:
			prev = p.walkIf(s, pt)
			continue

		case *ir.Return:
			p.walkReturn(s, pt)
			return pt, true

		case *ir.Break, *ir.Continue:
			return pt, true

		case *ir.VarDecl:
			p.walkVarDecl(s, pt)

		default:
			if e, ok := stmt.(ir.Expr); ok {
				p.walkExpr(e, pt, true)
			}
		}

		prev = pt
	}

	return prev, false
}

// walkIf branches at pt into every conditioned block plus (if present)
// the else block, joining every non-diverging branch's tail at a fresh
// join point, which becomes the flow's continuation.
func (p *pass) walkIf(f *ir.If, pt reach.Point) reach.Point {
	for i := 0; i < f.Conds.Len(); i++ {
		p.walkExpr(f.Conds.At(i), pt, false)
	}

	join := p.builder.Point()
	p.builder.Edge(pt, join)

	for i := 0; i < f.Blocks.Len(); i++ {
		branchEntry := p.builder.Point()
		p.builder.Edge(pt, branchEntry)

		tail, diverges := p.walkBlock(f.Blocks.At(i), branchEntry)
		if !diverges {
			p.builder.Edge(tail, join)
		}
	}

	if f.Else != nil {
		branchEntry := p.builder.Point()
		p.builder.Edge(pt, branchEntry)

		tail, diverges := p.walkBlock(f.Else, branchEntry)
		if !diverges {
			p.builder.Edge(tail, join)
		}
	}

	return join
}

func (p *pass) walkReturn(r *ir.Return, pt reach.Point) {
	if r.Value != nil {
		p.walkExpr(r.Value, pt, true)
	}
}

func (p *pass) walkVarDecl(d *ir.VarDecl, pt reach.Point) {
	if d.Init != nil {
		p.walkExpr(d.Init, pt, true)
	}
}

// walkExpr records a read or move event for every uni-permission
// name-use e reaches, recursing into its subexpressions. moveCtx marks
// a position where the whole value of the expression would change
// hands (an rval, an argument, a return value); it is false for
// positions that only read through a value (a borrow's inner
// expression, a dereference's, a field access's owner).
func (p *pass) walkExpr(e ir.Expr, pt reach.Point, moveCtx bool) {
	switch t := e.(type) {
	case *ir.NameUse:
		p.recordUse(t, pt, moveCtx)

	case *ir.Call:
		p.walkExpr(t.Callee, pt, false)

		args := t.Args.Slice()
		for _, a := range args {
			p.walkExpr(a, pt, true)
		}

	case *ir.Assign:
		p.walkExpr(t.Rval, pt, true)
		p.walkLval(t.Lval, pt)

	case *ir.Allocate:
		p.walkExpr(t.Inner, pt, t.Strat != ir.AllocBorrow)

	case *ir.Deref:
		p.walkExpr(t.Inner, pt, false)

	case *ir.Element:
		p.walkExpr(t.Owner, pt, false)

	case *ir.Cast:
		p.walkExpr(t.Inner, pt, false)

	case *ir.Logic:
		p.walkExpr(t.LHS, pt, false)

		if t.Op != ir.LogicNot {
			p.walkExpr(t.RHS, pt, false)
		}

	case *ir.TupleExpr:
		elems := t.Elems.Slice()
		for _, el := range elems {
			p.walkExpr(el, pt, true)
		}

	case *ir.Block, *ir.If:
		// An if/block used directly as a value (e.g. in a return or an
		// argument slot) is not given its own sub-graph here; its
		// nested name-uses are still visited so moves inside it are
		// still tracked, just without branch-sensitive points.
		p.walkNestedNode(e, pt)

	default:
		// Literals, SizeOf: no name-use to record.
	}
}

// walkLval records the write that a plain assignment target performs,
// after first reading any owner expression the lval dereferences
// through (s.field, *p, neither of which moves).
func (p *pass) walkLval(lval ir.Expr, pt reach.Point) {
	switch t := lval.(type) {
	case *ir.NameUse:
		if vd, ok := t.Decl.(*ir.VarDecl); ok {
			p.events = append(p.events, event{kind: evWrite, decl: vd, point: pt, node: t})
		}

	case *ir.Element:
		p.walkExpr(t.Owner, pt, false)

	case *ir.Deref:
		p.walkExpr(t.Inner, pt, false)
	}
}

func (p *pass) recordUse(use *ir.NameUse, pt reach.Point, moveCtx bool) {
	vd, ok := use.Decl.(*ir.VarDecl)
	if !ok {
		return
	}

	if moveCtx && vd.Perm == ir.PermUni {
		p.events = append(p.events, event{kind: evMove, decl: vd, point: pt, node: use})
		return
	}

	p.events = append(p.events, event{kind: evRead, decl: vd, point: pt, node: use})
}

// walkNestedNode is the fallback for a Block or If reached as a nested
// value-producing expression; it only recurses for name-use events and
// does not build a branch-sensitive sub-graph (see walkExpr's Block/If
// case).
func (p *pass) walkNestedNode(n ir.Node, pt reach.Point) {
	switch t := n.(type) {
	case *ir.Block:
		for i := 0; i < t.Stmts.Len(); i++ {
			switch s := t.Stmts.At(i).(type) {
			case *ir.VarDecl:
				p.walkVarDecl(s, pt)
			case *ir.Return:
				p.walkReturn(s, pt)
			case ir.Expr:
				p.walkExpr(s, pt, true)
			}
		}

	case *ir.If:
		for i := 0; i < t.Conds.Len(); i++ {
			p.walkExpr(t.Conds.At(i), pt, false)
		}

		for i := 0; i < t.Blocks.Len(); i++ {
			p.walkNestedNode(t.Blocks.At(i), pt)
		}

		if t.Else != nil {
			p.walkNestedNode(t.Else, pt)
		}
	}
}

// checkMoves replays the recorded events in execution order, reporting
// [diag.UnreachableAfterMove] for any read or re-move of a binding
// whose most recent move point is still reachable — i.e. no
// intervening write on every path reinitialized it.
func (p *pass) checkMoves(graph *reach.Graph) {
	movedAt := make(map[*ir.VarDecl]reach.Point)

	for _, ev := range p.events {
		switch ev.kind {
		case evWrite:
			delete(movedAt, ev.decl)

		case evRead, evMove:
			if mp, ok := movedAt[ev.decl]; ok && graph.Reachable(mp, ev.point) {
				p.diags.Report(diag.UnreachableAfterMove, ev.node, "%q used after its value was moved", ev.decl.Name)
			}

			if ev.kind == evMove {
				movedAt[ev.decl] = ev.point
			}
		}
	}
}
