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

import "github.com/cone-lang/conec/ir"

// checkNameUse assigns a NameUse's value type from whatever resolve
// bound it to. An unbound use (resolve already reported it and
// [sema.Run] would have stopped the pipeline before this pass ran) is
// defended against with an internal error rather than a panic, since a
// hand-built fixture might skip name resolution.
func (p *pass) checkNameUse(use *ir.NameUse) {
	switch decl := use.Decl.(type) {
	case *ir.VarDecl:
		use.SetValueType(decl.Type_)

	case *ir.FuncDecl:
		use.SetValueType(decl.Sig)

	case *ir.TypeDecl:
		use.SetValueType(decl.Type_)

	case nil:
		p.diags.Internal(use, "name use %q reached type-check unbound", use.Name)

	default:
		p.diags.Internal(use, "name use %q bound to unexpected node kind %T", use.Name, decl)
	}
}

// lvalDecl resolves an lvalue expression to the variable declaration it
// ultimately reads or writes, for permission/mutability checks. It
// reports ok=false for an lvalue shape (e.g. a computed Call result)
// that doesn't name storage directly.
func lvalDecl(e ir.Expr) (*ir.VarDecl, bool) {
	switch t := e.(type) {
	case *ir.NameUse:
		vd, ok := t.Decl.(*ir.VarDecl)
		return vd, ok

	case *ir.Element:
		return lvalDecl(t.Owner)

	case *ir.Deref:
		return lvalDecl(t.Inner)

	default:
		return nil, false
	}
}
