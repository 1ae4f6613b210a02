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

// Package ir defines the polymorphic node model the semantic passes walk:
// a common [Header] (tag + source position) embedded in every concrete
// node type, behind the [Node] interface. Concrete node shapes are
// allocated from per-type arenas (see [Pool]) and owned exactly once;
// every other reference to a node is a non-owning back-pointer, carried
// as a plain Node field.
package ir

// Symbol is an interned-by-value name symbol. Two Symbols are the same
// binding target iff they compare equal.
type Symbol string

// Node is implemented by every concrete node pointer. The dispatcher
// (internal/dispatch) and the passes tell node kinds apart with Go type
// switches; Tag names a node's kind.
type Node interface {
	Tag() Tag
	Pos() Pos
}

// Header is embedded in every concrete node type to supply Tag() and
// Pos(). It is never used standalone.
type Header struct {
	T  Tag
	At Pos
}

// Tag implements [Node].
func (h *Header) Tag() Tag { return h.T }

// Pos implements [Node].
func (h *Header) Pos() Pos { return h.At }

// Type is implemented by every type node (primitive, void, reference,
// function-signature, struct, array, permission, tuple).
type Type interface {
	Node
	typeNode()
}

// Decl is implemented by every named-declaration node (variable,
// function, type, module).
type Decl interface {
	Node
	DeclName() Symbol
}

// Expr is implemented by every expression node. ValueType is unset (nil)
// before the type-check pass assigns it and must be non-nil (and
// non-void-unless-deliberate) afterwards.
type Expr interface {
	Node
	ValueType() Type
	SetValueType(Type)
}

// ExprHeader is embedded in every concrete expression node, adding the
// value-type slot to Header.
type ExprHeader struct {
	Header
	VType Type
}

// ValueType implements [Expr].
func (e *ExprHeader) ValueType() Type { return e.VType }

// SetValueType implements [Expr].
func (e *ExprHeader) SetValueType(t Type) { e.VType = t }

// Stmt is implemented by control-flow statement nodes that are not
// themselves expressions (return/break/continue). Blocks and ifs double
// as expressions since their value is phi-merged from their last
// statement (see the type-check pass), so they implement Expr instead.
type Stmt interface {
	Node
}
