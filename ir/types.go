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

import "github.com/cone-lang/conec/internal/seq"

// PrimKind distinguishes the three numeric families a [PrimType] can
// belong to.
type PrimKind uint8

const (
	// KindSignedInt is a two's-complement signed integer.
	KindSignedInt PrimKind = iota
	// KindUnsignedInt is an unsigned integer.
	KindUnsignedInt
	// KindFloat is an IEEE-754 float.
	KindFloat
)

// String renders the numeric family name.
func (k PrimKind) String() string {
	switch k {
	case KindSignedInt:
		return "signed"
	case KindUnsignedInt:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "?kind"
	}
}

// PrimType is a primitive numeric type: a kind and bit-width in
// {1, 8, 16, 32, 64}. Width 1 is reserved for bool (an unsigned, 1-bit
// primitive).
type PrimType struct {
	Header
	Kind  PrimKind
	Width int
}

func (*PrimType) typeNode() {}

// IsBool reports whether this primitive type is the boolean type.
func (p *PrimType) IsBool() bool {
	return p.Kind == KindUnsignedInt && p.Width == 1
}

// VoidType is the empty/no-value type.
type VoidType struct {
	Header
}

func (*VoidType) typeNode() {}

// RefType is a reference/pointer type: element type, permission,
// allocator tag. Elem is nil until the type-check pass infers it from
// the address-of expression it annotates.
type RefType struct {
	Header
	Elem  Type
	Perm  Perm
	Alloc AllocStrat
}

func (*RefType) typeNode() {}

// FuncSigType is a function signature: ordered parameters (as variable
// declarations at scope depth 1) and a return type.
type FuncSigType struct {
	Header
	Params seq.Named[*VarDecl]
	Return Type
}

func (*FuncSigType) typeNode() {}

// StructType is a struct (or alloc-struct) type: ordered fields and an
// ordered method list. Declaration order of Fields is significant (it
// drives codegen layout).
type StructType struct {
	Header
	Fields  seq.Named[*VarDecl]
	Methods seq.Named[*FuncDecl]
}

func (*StructType) typeNode() {}

// Method looks up a method by name, returning ok=false if the struct
// declares no such method. When name is overloaded, this returns
// whichever declaration was registered first; callers that need to
// dispatch a call against every overload should use [StructType.Candidates]
// instead.
func (s *StructType) Method(name Symbol) (*FuncDecl, bool) {
	return s.Methods.Lookup(string(name))
}

// Candidates returns every method declared under name, in declaration
// order, so a call site can score each one against its argument list.
// A struct with no overloading for name returns a single-element (or
// empty) slice.
func (s *StructType) Candidates(name Symbol) []*FuncDecl {
	var out []*FuncDecl

	for i := 0; i < s.Methods.Len(); i++ {
		n, m := s.Methods.At(i)
		if Symbol(n) == name {
			out = append(out, m)
		}
	}

	return out
}

// ArrayType is a fixed-size array: element type and size.
type ArrayType struct {
	Header
	Elem Type
	Size int
}

func (*ArrayType) typeNode() {}

// PermType reifies a permission as a type node, used where the language
// allows a bare permission to stand for a type (e.g. a generic lock
// handle). Most permission checks operate directly on [Perm] values
// rather than through PermType.
type PermType struct {
	Header
	Perm Perm
}

func (*PermType) typeNode() {}

// TupleType is an ordered list of element types, backing tuple-valued
// returns. Tuple lvalues are not supported; TupleType appears as a
// function's declared return type and as the value type type-check
// gives a tuple expression.
type TupleType struct {
	Header
	Elems seq.List[Type]
}

func (*TupleType) typeNode() {}
