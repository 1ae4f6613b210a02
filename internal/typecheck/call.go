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

// checkCall resolves a call's signature and coerces each argument into
// its parameter slot. An Element callee (owner.method(...)) is a bound
// method call, resolved against the owner's struct type; any other
// callee must already carry a [ir.FuncSigType]-valued type.
func (p *pass) checkCall(call *ir.Call) {
	args := call.Args.Slice()

	switch callee := call.Callee.(type) {
	case *ir.Element:
		p.checkMethodCall(call, callee, args)

	default:
		p.checkPlainCall(call, callee, args)
	}
}

func (p *pass) checkPlainCall(call *ir.Call, callee ir.Expr, args []ir.Expr) {
	sig, ok := callee.ValueType().(*ir.FuncSigType)
	if !ok {
		p.diags.Report(diag.NotCallable, call, "%s is not callable", typeName(callee.ValueType()))
		return
	}

	args, ok = p.fillDefaultArgs(call, sig, args)
	if !ok {
		p.diags.Report(diag.ArityMismatch, call, "expected %d argument(s), got %d", sig.Params.Len(), len(args))
		return
	}

	p.coerceArgs(call, sig, args)
	call.SetValueType(sig.Return)
}

// fillDefaultArgs extends call.Args with the declared default values
// (each remaining parameter's Init) of sig's parameters beyond the
// len(args) already supplied, and returns the extended argument slice.
// ok is false when args has more than sig has parameters, or a
// parameter left unfilled has no default to fill it from.
func (p *pass) fillDefaultArgs(call *ir.Call, sig *ir.FuncSigType, args []ir.Expr) ([]ir.Expr, bool) {
	if len(args) > sig.Params.Len() {
		return args, false
	}

	for i := len(args); i < sig.Params.Len(); i++ {
		_, param := sig.Params.At(i)
		if param.Init == nil {
			return args, false
		}

		call.Args.Append(param.Init)
	}

	return call.Args.Slice(), true
}

// checkMethodCall resolves a bound method call against the owner
// expression's struct type. A struct name may carry more than one
// method under the same name (overloading); every same-named candidate
// is scored against args per the dispatch rules in
// [github.com/cone-lang/conec/internal/typealg], and the call binds to
// whichever scores lowest and strictly positive, ties going to the
// first-declared candidate.
func (p *pass) checkMethodCall(call *ir.Call, elem *ir.Element, args []ir.Expr) {
	owner := elem.Owner.ValueType()
	if ref, ok := owner.(*ir.RefType); ok {
		owner = ref.Elem
	}

	st, ok := owner.(*ir.StructType)
	if !ok {
		p.diags.Report(diag.NoSuchMember, call, "%s has no member %q", typeName(owner), elem.Field.Name)
		return
	}

	methods := st.Candidates(elem.Field.Name)
	if len(methods) == 0 {
		p.diags.Report(diag.NoSuchMember, call, "%s has no method %q", typeName(owner), elem.Field.Name)
		return
	}

	candidates := make([]typealg.Candidate, len(methods))
	for i, m := range methods {
		candidates[i] = typealg.Candidate{Decl: m, Sig: m.Sig}
	}

	chosen, _, ok := typealg.Select(candidates, args)
	if !ok {
		p.diags.Report(diag.NoMethod, call, "no overload of %q accepts these %d argument(s)", elem.Field.Name, len(args))
		return
	}

	// Select only accepted chosen.Sig because every parameter beyond
	// args already has a default, so this always succeeds.
	args, _ = p.fillDefaultArgs(call, chosen.Sig, args)

	p.coerceArgs(call, chosen.Sig, args)

	// Callee stays an Element rather than being rewritten to a bare
	// NameUse: the owner expression is the receiver argument the flow
	// pass still needs to see for move/borrow tracking.
	elem.Field.Decl = chosen.Decl
	elem.Field.SetValueType(chosen.Sig)
	call.SetValueType(chosen.Sig.Return)
}

func (p *pass) coerceArgs(call *ir.Call, sig *ir.FuncSigType, args []ir.Expr) {
	for i := 0; i < sig.Params.Len(); i++ {
		_, param := sig.Params.At(i)
		slot := &args[i]

		if typealg.Equal((*slot).ValueType(), param.Type_) {
			continue
		}

		if pref, ok := param.Type_.(*ir.RefType); ok {
			if aref, ok := (*slot).ValueType().(*ir.RefType); ok && pref.Perm.Matches(aref.Perm) {
				continue
			}

			p.diags.Report(diag.PermMismatch, *slot, "argument %d does not satisfy %s %s",
				i+1, pref.Perm, typeName(pref.Elem))

			continue
		}

		if !typealg.Coerce(p.pool, param.Type_, slot) {
			p.diags.Report(diag.TypeMismatch, *slot, "argument %d: cannot use value of type %s as %s",
				i+1, typeName((*slot).ValueType()), typeName(param.Type_))
		}
	}
}
