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

package ir

import "fmt"

// Perm is the permission/ownership qualifier on a reference type or a
// variable declaration: uni, mut, imm, const, mutx, id, lock.
type Perm uint8

const (
	// PermUni is unique ownership: only another uni satisfies it.
	PermUni Perm = iota
	// PermMut is mutable, non-exclusive access.
	PermMut
	// PermImm is read-only, alias-stable access.
	PermImm
	// PermConst is read-only access that accepts any source permission.
	PermConst
	// PermMutX is mutable access gated by a runtime lock.
	PermMutX
	// PermID is identity-comparison-only access.
	PermID
	// PermLock is the permission of a lock handle itself.
	PermLock
)

// MarshalText implements [encoding.TextMarshaler], the same closed-enum
// rendering the rest of this codebase uses for small configuration enums.
func (p Perm) MarshalText() ([]byte, error) {
	switch p {
	case PermUni:
		return []byte("uni"), nil
	case PermMut:
		return []byte("mut"), nil
	case PermImm:
		return []byte("imm"), nil
	case PermConst:
		return []byte("const"), nil
	case PermMutX:
		return []byte("mutx"), nil
	case PermID:
		return []byte("id"), nil
	case PermLock:
		return []byte("lock"), nil
	default:
		return nil, fmt.Errorf("ir: unknown permission %d", p)
	}
}

// String renders the permission name for diagnostics.
func (p Perm) String() string {
	text, err := p.MarshalText()
	if err != nil {
		return "?perm"
	}

	return string(text)
}

// Mutable reports whether an lval with this permission may be the target
// of a plain assignment. mutx is mutable only under a held lock, so
// Mutable reports false for it; see [Perm.MutableUnderLock]. The flow
// pass does not track lock holding.
func (p Perm) Mutable() bool {
	switch p {
	case PermUni, PermMut:
		return true
	default:
		return false
	}
}

// MutableUnderLock reports whether this permission is mutable when a lock
// on it is held.
func (p Perm) MutableUnderLock() bool {
	return p == PermMutX || p.Mutable()
}

// permRow lists, for each target permission, which source permissions it
// accepts. Order matches the table in the permission-compatibility design.
var permRow = map[Perm][]Perm{
	PermUni:   {PermUni},
	PermMut:   {PermUni, PermMut},
	PermImm:   {PermUni, PermImm},
	PermConst: {PermUni, PermMut, PermImm, PermConst, PermMutX, PermID, PermLock},
	PermMutX:  {PermUni, PermMut, PermMutX},
	PermID:    {PermUni, PermMut, PermImm, PermConst, PermMutX, PermID, PermLock},
	PermLock:  {PermLock},
}

// Matches reports whether a value with permission source satisfies a
// context requiring permission target ("source satisfies target").
func (target Perm) Matches(source Perm) bool {
	for _, accepted := range permRow[target] {
		if accepted == source {
			return true
		}
	}

	return false
}

// AllocStrat names the allocation strategy of an Allocate (address-of)
// node: a stack borrow, a heap allocation, or a region allocation.
type AllocStrat uint8

const (
	// AllocBorrow takes a non-owning reference to an existing lvalue.
	AllocBorrow AllocStrat = iota
	// AllocHeap allocates fresh storage on the heap.
	AllocHeap
	// AllocRegion allocates fresh storage in the enclosing region/arena.
	AllocRegion
)

// String renders the allocation strategy name.
func (a AllocStrat) String() string {
	switch a {
	case AllocBorrow:
		return "borrow"
	case AllocHeap:
		return "heap"
	case AllocRegion:
		return "region"
	default:
		return "?alloc"
	}
}
