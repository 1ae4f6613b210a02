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

// Package typealg implements the type algebra the type-check pass runs
// on every expression: structural equality, implicit coercion (with
// cast-node insertion through a slot pointer), and permission-aware
// method dispatch scoring.
package typealg

import "github.com/cone-lang/conec/ir"

// Equal reports whether a and b are the same type, structurally. Two
// struct types are equal only if they are the same node (structs are
// nominal once declared); every other type kind compares by shape.
func Equal(a, b ir.Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Tag() != b.Tag() {
		return false
	}

	switch at := a.(type) {
	case *ir.PrimType:
		bt := b.(*ir.PrimType)
		return at.Kind == bt.Kind && at.Width == bt.Width

	case *ir.VoidType:
		return true

	case *ir.RefType:
		bt := b.(*ir.RefType)
		return at.Perm == bt.Perm && Equal(at.Elem, bt.Elem)

	case *ir.FuncSigType:
		bt := b.(*ir.FuncSigType)
		if at.Params.Len() != bt.Params.Len() || !Equal(at.Return, bt.Return) {
			return false
		}

		for i := 0; i < at.Params.Len(); i++ {
			_, ap := at.Params.At(i)
			_, bp := bt.Params.At(i)
			if !Equal(ap.Type_, bp.Type_) {
				return false
			}
		}

		return true

	case *ir.StructType:
		// Struct types are nominal: only identical pointers are equal.
		return a == b

	case *ir.ArrayType:
		bt := b.(*ir.ArrayType)
		return at.Size == bt.Size && Equal(at.Elem, bt.Elem)

	case *ir.PermType:
		bt := b.(*ir.PermType)
		return at.Perm == bt.Perm

	case *ir.TupleType:
		bt := b.(*ir.TupleType)
		if at.Elems.Len() != bt.Elems.Len() {
			return false
		}

		for i := 0; i < at.Elems.Len(); i++ {
			if !Equal(at.Elems.At(i), bt.Elems.At(i)) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// IsNumeric reports whether t is a primitive signed, unsigned, or float
// type (i.e. a valid operand of arithmetic coercion).
func IsNumeric(t ir.Type) bool {
	_, ok := t.(*ir.PrimType)
	return ok
}

// widthRank orders numeric widths for widening comparisons.
func widthRank(p *ir.PrimType) int {
	return p.Width
}
