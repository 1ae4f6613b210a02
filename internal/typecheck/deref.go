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

// checkDeref unwraps Inner's reference type to get the pointee type.
func (p *pass) checkDeref(d *ir.Deref) {
	elem, ok := typealg.Deref(d.Inner.ValueType())
	if !ok {
		p.diags.Report(diag.NotDereferenceable, d, "%s is not a reference type", typeName(d.Inner.ValueType()))
		return
	}

	d.SetValueType(elem)
}

// checkElement resolves a field access against the owner's (possibly
// referenced) struct type. A method name resolved through Element
// directly (not as a call's callee) still types to the method's
// signature, so `f := s.method` is well-typed even though only
// `s.method(...)` is reachable through [checkCall]'s method path.
func (p *pass) checkElement(e *ir.Element) {
	owner := e.Owner.ValueType()
	if ref, ok := owner.(*ir.RefType); ok {
		owner = ref.Elem
	}

	st, ok := owner.(*ir.StructType)
	if !ok {
		p.diags.Report(diag.NoSuchMember, e, "%s has no member %q", typeName(owner), e.Field.Name)
		return
	}

	if field, ok := st.Fields.Lookup(string(e.Field.Name)); ok {
		e.Field.Decl = field
		e.Field.SetValueType(field.Type_)
		e.SetValueType(field.Type_)

		return
	}

	if method, ok := st.Method(e.Field.Name); ok {
		e.Field.Decl = method
		e.Field.SetValueType(method.Sig)
		e.SetValueType(method.Sig)

		return
	}

	p.diags.Report(diag.NoSuchMember, e, "%s has no member %q", typeName(owner), e.Field.Name)
}
