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

// checkReturn coerces a return statement's value (if any) against the
// enclosing function's declared return type, including the tuple
// arity a multi-value return requires: tuple lvalue destructuring is
// not implemented, so a tuple only ever appears here, as a
// [ir.TupleExpr] matched element-wise against a [ir.TupleType] return.
func (p *pass) checkReturn(r *ir.Return) {
	if p.curFunc == nil {
		p.diags.Internal(r, "return statement reached type-check outside any function")
		return
	}

	want := p.curFunc.Sig.Return

	if r.Value == nil {
		if _, ok := want.(*ir.VoidType); !ok {
			p.diags.Report(diag.BadReturnArity, r, "missing return value, function returns %s", typeName(want))
		}

		return
	}

	if _, ok := want.(*ir.VoidType); ok {
		p.diags.Report(diag.BadReturnArity, r, "unexpected return value in a void function")
		return
	}

	wantTuple, wantsTuple := want.(*ir.TupleType)
	tuple, isTuple := r.Value.(*ir.TupleExpr)

	switch {
	case wantsTuple && isTuple:
		p.checkTupleReturn(r, wantTuple, tuple)

	case wantsTuple != isTuple:
		p.diags.Report(diag.BadReturnArity, r, "return arity does not match %s", typeName(want))

	default:
		slot := &r.Value
		if !typealg.Coerce(p.pool, want, slot) {
			p.diags.Report(diag.TypeMismatch, r.Value, "cannot return value of type %s as %s",
				typeName((*slot).ValueType()), typeName(want))

			return
		}

		r.Value = *slot
	}
}

func (p *pass) checkTupleReturn(r *ir.Return, want *ir.TupleType, tuple *ir.TupleExpr) {
	if want.Elems.Len() != tuple.Elems.Len() {
		p.diags.Report(diag.BadReturnArity, r, "expected %d return value(s), got %d", want.Elems.Len(), tuple.Elems.Len())
		return
	}

	elems := tuple.Elems.Slice()

	for i := range elems {
		slot := &elems[i]
		wantElem := want.Elems.At(i)

		if !typealg.Coerce(p.pool, wantElem, slot) {
			p.diags.Report(diag.TypeMismatch, *slot, "return element %d: cannot use value of type %s as %s",
				i+1, typeName((*slot).ValueType()), typeName(wantElem))
		}
	}

	tuple.SetValueType(want)
}
