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

// IntLit is an unsigned integer literal. Before type-check it carries no
// default type; type-check assigns its VType the default signed 32-bit
// integer type (i32). No unsigned default type is applied.
type IntLit struct {
	ExprHeader
	Value uint64
}

// FloatLit is a float literal, defaulted to the language's default float
// type by type-check.
type FloatLit struct {
	ExprHeader
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	ExprHeader
	Value string
}

// NameUse is a reference to a name. Before name resolution it carries
// only Name (and an optional module qualifier Mod); after resolution,
// Decl is the bound declaration (or resolution failed and a diagnostic
// was emitted).
type NameUse struct {
	ExprHeader
	Name Symbol
	Mod  Symbol // empty when unqualified
	Decl Node   // non-owning back-reference to the bound declaration
}

// Call is a function (or method) call: callee expression and ordered
// argument list. For a method call, Callee is an Element whose Field
// is bound, by type-check, directly to the chosen method declaration.
type Call struct {
	ExprHeader
	Callee Expr
	Args   seq.List[Expr]
}

// AssignKind distinguishes plain assignment from compound
// (arithmetic-and-assign) forms.
type AssignKind uint8

const (
	// AssignPlain is `lval = rval`.
	AssignPlain AssignKind = iota
	// AssignAdd is `lval += rval`.
	AssignAdd
	// AssignSub is `lval -= rval`.
	AssignSub
	// AssignMul is `lval *= rval`.
	AssignMul
	// AssignDiv is `lval /= rval`.
	AssignDiv
)

// Assign is an assignment expression: lval, rval, and the assignment
// kind.
type Assign struct {
	ExprHeader
	Lval Expr
	Rval Expr
	Kind AssignKind
}

// Allocate is the address-of/allocate node (`&`): it wraps an inner
// expression with a reference type; Strat selects whether the
// reference borrows the inner lvalue or allocates fresh heap/region
// storage.
type Allocate struct {
	ExprHeader
	Inner Expr
	RefT  *RefType
	Strat AllocStrat
}

// Deref is a dereference expression (`*p`). ValueType is the pointee
// type of Inner's reference type.
type Deref struct {
	ExprHeader
	Inner Expr
}

// Element is a struct field access (`owner.field`): an owner expression
// and the field name-use.
type Element struct {
	ExprHeader
	Owner Expr
	Field *NameUse
}

// Cast is an explicit type conversion.
type Cast struct {
	ExprHeader
	Inner  Expr
	Target Type
}

// SizeOf computes the size of a type.
type SizeOf struct {
	ExprHeader
	Operand Type
}

// LogicOp distinguishes the three logic operators.
type LogicOp uint8

const (
	// LogicAnd is `a and b`.
	LogicAnd LogicOp = iota
	// LogicOr is `a or b`.
	LogicOr
	// LogicNot is `not a` (RHS is unused).
	LogicNot
)

// Logic is a boolean logic expression (and/or/not).
type Logic struct {
	ExprHeader
	Op  LogicOp
	LHS Expr
	RHS Expr // nil for LogicNot
}

// Block is an ordered statement list. Its ValueType, once type-checked,
// equals the value-type of its last statement when used as an
// expression, else void.
type Block struct {
	ExprHeader
	Stmts seq.List[Node]
}

// If is an if/else-if/.../else chain: Conds[i] guards Blocks[i], and Else
// (possibly nil) is the trailing else-block. Its ValueType is the
// unified type of every branch whose final statement does not diverge
// (return/break/continue), or void if no branch contributes.
type If struct {
	ExprHeader
	Conds  seq.List[Expr]
	Blocks seq.List[*Block]
	Else   *Block
}

// TupleExpr is a value tuple: an ordered list of element expressions.
// It exists to back tuple-valued returns; tuple lvalue destructuring is
// not implemented.
type TupleExpr struct {
	ExprHeader
	Elems seq.List[Expr]
}
