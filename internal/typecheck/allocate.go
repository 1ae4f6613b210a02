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
	"github.com/cone-lang/conec/ir"
)

// checkAllocate fills in an address-of expression's reference type and,
// for a borrow, validates the permission against the borrowed
// variable. RefT.Elem arrives nil from the builder — a bare & gives no
// static hint of the permission or allocator it needs until the inner
// expression is typed — so this pass fills it in from Inner's type and
// leaves Perm/Alloc exactly as the builder set them.
func (p *pass) checkAllocate(a *ir.Allocate) {
	if a.RefT.Elem == nil {
		a.RefT.Elem = a.Inner.ValueType()
	}

	if a.Strat == ir.AllocBorrow {
		use, ok := a.Inner.(*ir.NameUse)
		if !ok {
			p.diags.Report(diag.PermMismatch, a, "borrow source must be a variable name, not %s", typeName(a.Inner.ValueType()))
			a.SetValueType(a.RefT)

			return
		}

		vd, ok := use.Decl.(*ir.VarDecl)
		if !ok || !a.RefT.Perm.Matches(vd.Perm) {
			p.diags.Report(diag.PermMismatch, a, "cannot borrow %q as %s", use.Name, a.RefT.Perm)
		}
	}

	a.SetValueType(a.RefT)
}
