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

// Package dispatch is the single tree-walking entry point every
// semantic pass drives its traversal through. [Walk] type-switches on
// each node's concrete type to find its children; a [Visitor] decides,
// per node, whether to descend (mirroring go/ast.Walk's own Visitor
// contract). The three passes (name resolution, type-check, flow) are
// each one Visitor implementation, run one after another over the same
// tree, single-threaded and without cancellation.
package dispatch

import "github.com/cone-lang/conec/ir"

// Visitor is called once per node Walk visits, and once more with a nil
// node when Walk is done with that node's children — the pairing a
// pass uses to hook a name-table scope on entry and unhook it on exit,
// mirroring go/ast.Walk's own enter/leave contract. If Visit(n) returns
// a non-nil Visitor, Walk uses it to visit n's children; returning nil
// prunes that subtree (and skips the matching leave call).
type Visitor interface {
	Visit(n ir.Node) (w Visitor)
}

// Walk visits n, then recursively every child Walk's Visitor exposes,
// then signals the leave with a final w.Visit(nil). A nil n is a no-op,
// so callers need not guard an optional interface-typed field (an
// absent initializer) before calling Walk; a nil concrete pointer such
// as an absent else-block is not a nil [ir.Node] and is guarded where
// Walk reaches it.
func Walk(v Visitor, n ir.Node) {
	if n == nil || v == nil {
		return
	}

	w := v.Visit(n)
	if w == nil {
		return
	}

	defer w.Visit(nil)

	v = w

	switch t := n.(type) {
	case *ir.Program:
		for i := 0; i < t.Decls.Len(); i++ {
			Walk(v, t.Decls.At(i))
		}

	case *ir.ModuleDecl:
		for i := 0; i < t.Decls.Len(); i++ {
			_, d := t.Decls.At(i)
			Walk(v, d)
		}

	case *ir.VarDecl:
		Walk(v, t.Type_)
		Walk(v, t.Init)

	case *ir.FuncDecl:
		if t.Sig != nil {
			Walk(v, t.Sig)
		}

		if t.Body != nil {
			Walk(v, t.Body)
		}

	case *ir.TypeDecl:
		Walk(v, t.Type_)

	case *ir.FuncSigType:
		for i := 0; i < t.Params.Len(); i++ {
			_, p := t.Params.At(i)
			Walk(v, p)
		}

		Walk(v, t.Return)

	case *ir.StructType:
		for i := 0; i < t.Fields.Len(); i++ {
			_, f := t.Fields.At(i)
			Walk(v, f)
		}

		for i := 0; i < t.Methods.Len(); i++ {
			_, m := t.Methods.At(i)
			Walk(v, m)
		}

	case *ir.RefType:
		Walk(v, t.Elem)

	case *ir.ArrayType:
		Walk(v, t.Elem)

	case *ir.TupleType:
		for i := 0; i < t.Elems.Len(); i++ {
			Walk(v, t.Elems.At(i))
		}

	case *ir.Block:
		for i := 0; i < t.Stmts.Len(); i++ {
			Walk(v, t.Stmts.At(i))
		}

	case *ir.Call:
		Walk(v, t.Callee)

		for i := 0; i < t.Args.Len(); i++ {
			Walk(v, t.Args.At(i))
		}

	case *ir.Assign:
		Walk(v, t.Lval)
		Walk(v, t.Rval)

	case *ir.Allocate:
		Walk(v, t.Inner)

		if t.RefT != nil {
			Walk(v, t.RefT)
		}

	case *ir.Deref:
		Walk(v, t.Inner)

	case *ir.Element:
		// Field is deliberately not walked: a member name is not a
		// lexically scoped identifier, so neither resolve nor
		// typecheck's generic NameUse handling applies to it.
		// checkElement/checkMethodCall bind it directly once Owner's
		// struct type is known.
		Walk(v, t.Owner)

	case *ir.Cast:
		Walk(v, t.Inner)
		Walk(v, t.Target)

	case *ir.SizeOf:
		Walk(v, t.Operand)

	case *ir.Logic:
		Walk(v, t.LHS)
		Walk(v, t.RHS)

	case *ir.If:
		for i := 0; i < t.Conds.Len(); i++ {
			Walk(v, t.Conds.At(i))
		}

		for i := 0; i < t.Blocks.Len(); i++ {
			Walk(v, t.Blocks.At(i))
		}

		if t.Else != nil {
			Walk(v, t.Else)
		}

	case *ir.TupleExpr:
		for i := 0; i < t.Elems.Len(); i++ {
			Walk(v, t.Elems.At(i))
		}

	case *ir.Return:
		Walk(v, t.Value)

	case *ir.NameUse, *ir.IntLit, *ir.FloatLit, *ir.StringLit,
		*ir.Break, *ir.Continue, *ir.PrimType, *ir.VoidType, *ir.PermType:
		// Leaves: no children to walk.
	}
}
