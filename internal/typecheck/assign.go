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

// checkAssign enforces that an assignment's lval names mutable storage
// and that its rval is (or can be coerced to) the lval's type. Compound
// forms (+=, -=, ...) additionally require both sides to be numeric,
// since the flow pass never rewrites them into separate binary-op and
// store steps.
func (p *pass) checkAssign(a *ir.Assign) {
	target, ok := lvalDecl(a.Lval)
	if !ok {
		p.diags.Report(diag.NotAssignable, a.Lval, "%s is not an assignable location", typeName(a.Lval.ValueType()))
		a.SetValueType(a.Lval.ValueType())

		return
	}

	if !target.Perm.Mutable() && !target.Perm.MutableUnderLock() {
		p.diags.Report(diag.NotAssignable, a.Lval, "%q has permission %s, which is not assignable", target.Name, target.Perm)
		a.SetValueType(a.Lval.ValueType())

		return
	}

	if a.Kind != ir.AssignPlain {
		if !typealg.IsNumeric(a.Lval.ValueType()) || !typealg.IsNumeric(a.Rval.ValueType()) {
			p.diags.Report(diag.TypeMismatch, a, "compound assignment requires numeric operands, got %s and %s",
				typeName(a.Lval.ValueType()), typeName(a.Rval.ValueType()))

			a.SetValueType(a.Lval.ValueType())

			return
		}
	}

	slot := &a.Rval
	if !typealg.Coerce(p.pool, a.Lval.ValueType(), slot) {
		p.diags.Report(diag.TypeMismatch, a.Rval, "cannot assign value of type %s to %q of type %s",
			typeName((*slot).ValueType()), target.Name, typeName(a.Lval.ValueType()))
	}

	a.Rval = *slot
	a.SetValueType(a.Lval.ValueType())
}
