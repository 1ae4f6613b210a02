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

package typealg

import "github.com/cone-lang/conec/ir"

// Coerce makes the expression held in *slot assignable to target,
// rewriting *slot in place to a [ir.Cast] when a widening conversion is
// needed. slot must be the actual field the expression lives in (an
// argument-list element, an lval's rval, a return value) so the rewrite
// is visible to the caller; Coerce never hands back a detached copy.
//
// It reports whether target was (or was made) satisfiable.
func Coerce(pool *ir.Pool, target ir.Type, slot *ir.Expr) bool {
	if slot == nil || *slot == nil || target == nil {
		return false
	}

	current := (*slot).ValueType()
	if Equal(current, target) {
		return true
	}

	from, fromOK := current.(*ir.PrimType)
	to, toOK := target.(*ir.PrimType)
	if !fromOK || !toOK {
		return false
	}

	if !widens(from, to) {
		return false
	}

	cast := pool.NewCast((*slot).Pos(), *slot, target)
	cast.SetValueType(target)
	*slot = cast

	return true
}

// widens reports whether a value of primitive type from may be
// implicitly converted to primitive type to: same family at a wider or
// equal width, an integer (signed or unsigned) widening to a float at
// least as wide, or an unsigned integer widening to a strictly wider
// signed integer.
func widens(from, to *ir.PrimType) bool {
	if from.Kind == to.Kind {
		return widthRank(to) >= widthRank(from)
	}

	if to.Kind == KindFloat() && from.Kind != KindFloat() {
		return widthRank(to) >= widthRank(from)
	}

	if from.Kind == ir.KindUnsignedInt && to.Kind == ir.KindSignedInt {
		return widthRank(to) > widthRank(from)
	}

	return false
}

// KindFloat is a small indirection so widens reads as a comparison
// against a named kind rather than a bare constant.
func KindFloat() ir.PrimKind { return ir.KindFloat }

// Deref unwraps a single reference layer, returning the pointee type.
// It reports ok=false if t is not a reference type.
func Deref(t ir.Type) (ir.Type, bool) {
	ref, ok := t.(*ir.RefType)
	if !ok {
		return nil, false
	}

	return ref.Elem, true
}
