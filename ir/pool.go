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

import "github.com/cone-lang/conec/internal/arena"

// Pool owns every node arena for one compilation. A front end (parser)
// or a test fixture builder allocates all IR nodes for a [Program]
// through a single Pool, so that node lifetime matches compilation
// lifetime and no node pointer is ever freed individually.
type Pool struct {
	programs    *arena.Arena[Program]
	modules     *arena.Arena[ModuleDecl]
	blocks      *arena.Arena[Block]
	varDecls    *arena.Arena[VarDecl]
	funcDecls   *arena.Arena[FuncDecl]
	typeDecls   *arena.Arena[TypeDecl]
	primTypes   *arena.Arena[PrimType]
	voidTypes   *arena.Arena[VoidType]
	refTypes    *arena.Arena[RefType]
	funcSigs    *arena.Arena[FuncSigType]
	structTypes *arena.Arena[StructType]
	arrayTypes  *arena.Arena[ArrayType]
	permTypes   *arena.Arena[PermType]
	tupleTypes  *arena.Arena[TupleType]
	intLits     *arena.Arena[IntLit]
	floatLits   *arena.Arena[FloatLit]
	stringLits  *arena.Arena[StringLit]
	nameUses    *arena.Arena[NameUse]
	calls       *arena.Arena[Call]
	assigns     *arena.Arena[Assign]
	allocates   *arena.Arena[Allocate]
	derefs      *arena.Arena[Deref]
	elements    *arena.Arena[Element]
	casts       *arena.Arena[Cast]
	sizeOfs     *arena.Arena[SizeOf]
	logics      *arena.Arena[Logic]
	ifs         *arena.Arena[If]
	tupleExprs  *arena.Arena[TupleExpr]
	returns     *arena.Arena[Return]
	breaks      *arena.Arena[Break]
	continues   *arena.Arena[Continue]
}

const poolChunkSize = 256

// NewPool allocates an empty node pool.
func NewPool() *Pool {
	return &Pool{
		programs:    arena.New[Program](poolChunkSize),
		modules:     arena.New[ModuleDecl](poolChunkSize),
		blocks:      arena.New[Block](poolChunkSize),
		varDecls:    arena.New[VarDecl](poolChunkSize),
		funcDecls:   arena.New[FuncDecl](poolChunkSize),
		typeDecls:   arena.New[TypeDecl](poolChunkSize),
		primTypes:   arena.New[PrimType](poolChunkSize),
		voidTypes:   arena.New[VoidType](poolChunkSize),
		refTypes:    arena.New[RefType](poolChunkSize),
		funcSigs:    arena.New[FuncSigType](poolChunkSize),
		structTypes: arena.New[StructType](poolChunkSize),
		arrayTypes:  arena.New[ArrayType](poolChunkSize),
		permTypes:   arena.New[PermType](poolChunkSize),
		tupleTypes:  arena.New[TupleType](poolChunkSize),
		intLits:     arena.New[IntLit](poolChunkSize),
		floatLits:   arena.New[FloatLit](poolChunkSize),
		stringLits:  arena.New[StringLit](poolChunkSize),
		nameUses:    arena.New[NameUse](poolChunkSize),
		calls:       arena.New[Call](poolChunkSize),
		assigns:     arena.New[Assign](poolChunkSize),
		allocates:   arena.New[Allocate](poolChunkSize),
		derefs:      arena.New[Deref](poolChunkSize),
		elements:    arena.New[Element](poolChunkSize),
		casts:       arena.New[Cast](poolChunkSize),
		sizeOfs:     arena.New[SizeOf](poolChunkSize),
		logics:      arena.New[Logic](poolChunkSize),
		ifs:         arena.New[If](poolChunkSize),
		tupleExprs:  arena.New[TupleExpr](poolChunkSize),
		returns:     arena.New[Return](poolChunkSize),
		breaks:      arena.New[Break](poolChunkSize),
		continues:   arena.New[Continue](poolChunkSize),
	}
}

// NewProgram allocates an empty Program.
func (p *Pool) NewProgram(at Pos) *Program {
	n := p.programs.Alloc()
	n.T, n.At = TagProgram, at
	return n
}

// NewModule allocates a ModuleDecl.
func (p *Pool) NewModule(at Pos, name Symbol) *ModuleDecl {
	n := p.modules.Alloc()
	n.T, n.At, n.Name = TagModule, at, name
	return n
}

// NewBlock allocates an empty Block.
func (p *Pool) NewBlock(at Pos) *Block {
	n := p.blocks.Alloc()
	n.T, n.At = TagBlock, at
	return n
}

// NewVarDecl allocates a VarDecl.
func (p *Pool) NewVarDecl(at Pos, name Symbol, owner Node, perm Perm) *VarDecl {
	n := p.varDecls.Alloc()
	n.T, n.At, n.Name, n.Owner, n.Perm = TagVarDecl, at, name, owner, perm
	return n
}

// NewFuncDecl allocates a FuncDecl.
func (p *Pool) NewFuncDecl(at Pos, name Symbol, owner Node, sig *FuncSigType) *FuncDecl {
	n := p.funcDecls.Alloc()
	n.T, n.At, n.Name, n.Owner, n.Sig = TagFuncDecl, at, name, owner, sig
	return n
}

// NewTypeDecl allocates a TypeDecl.
func (p *Pool) NewTypeDecl(at Pos, name Symbol, owner Node, typ Type) *TypeDecl {
	n := p.typeDecls.Alloc()
	n.T, n.At, n.Name, n.Owner, n.Type_ = TagTypeDecl, at, name, owner, typ
	return n
}

// NewPrimType allocates a PrimType.
func (p *Pool) NewPrimType(at Pos, kind PrimKind, width int) *PrimType {
	n := p.primTypes.Alloc()
	n.T, n.At, n.Kind, n.Width = TagPrimType, at, kind, width
	return n
}

// NewVoidType allocates a VoidType.
func (p *Pool) NewVoidType(at Pos) *VoidType {
	n := p.voidTypes.Alloc()
	n.T, n.At = TagVoidType, at
	return n
}

// NewRefType allocates a RefType. Elem may be left nil, to be inferred
// by type-check.
func (p *Pool) NewRefType(at Pos, elem Type, perm Perm, alloc AllocStrat) *RefType {
	n := p.refTypes.Alloc()
	n.T, n.At, n.Elem, n.Perm, n.Alloc = TagRefType, at, elem, perm, alloc
	return n
}

// NewFuncSigType allocates an empty FuncSigType.
func (p *Pool) NewFuncSigType(at Pos, ret Type) *FuncSigType {
	n := p.funcSigs.Alloc()
	n.T, n.At, n.Return = TagFuncSigType, at, ret
	return n
}

// NewStructType allocates an empty StructType.
func (p *Pool) NewStructType(at Pos) *StructType {
	n := p.structTypes.Alloc()
	n.T, n.At = TagStructType, at
	return n
}

// NewArrayType allocates an ArrayType.
func (p *Pool) NewArrayType(at Pos, elem Type, size int) *ArrayType {
	n := p.arrayTypes.Alloc()
	n.T, n.At, n.Elem, n.Size = TagArrayType, at, elem, size
	return n
}

// NewPermType allocates a PermType.
func (p *Pool) NewPermType(at Pos, perm Perm) *PermType {
	n := p.permTypes.Alloc()
	n.T, n.At, n.Perm = TagPermType, at, perm
	return n
}

// NewTupleType allocates an empty TupleType.
func (p *Pool) NewTupleType(at Pos) *TupleType {
	n := p.tupleTypes.Alloc()
	n.T, n.At = TagTupleType, at
	return n
}

// NewIntLit allocates an IntLit.
func (p *Pool) NewIntLit(at Pos, v uint64) *IntLit {
	n := p.intLits.Alloc()
	n.T, n.At, n.Value = TagIntLit, at, v
	return n
}

// NewFloatLit allocates a FloatLit.
func (p *Pool) NewFloatLit(at Pos, v float64) *FloatLit {
	n := p.floatLits.Alloc()
	n.T, n.At, n.Value = TagFloatLit, at, v
	return n
}

// NewStringLit allocates a StringLit.
func (p *Pool) NewStringLit(at Pos, v string) *StringLit {
	n := p.stringLits.Alloc()
	n.T, n.At, n.Value = TagStringLit, at, v
	return n
}

// NewNameUse allocates an unresolved NameUse.
func (p *Pool) NewNameUse(at Pos, mod, name Symbol) *NameUse {
	n := p.nameUses.Alloc()
	n.T, n.At, n.Mod, n.Name = TagNameUse, at, mod, name
	return n
}

// NewCall allocates a Call with no arguments yet.
func (p *Pool) NewCall(at Pos, callee Expr) *Call {
	n := p.calls.Alloc()
	n.T, n.At, n.Callee = TagCall, at, callee
	return n
}

// NewAssign allocates an Assign.
func (p *Pool) NewAssign(at Pos, lval, rval Expr, kind AssignKind) *Assign {
	n := p.assigns.Alloc()
	n.T, n.At, n.Lval, n.Rval, n.Kind = TagAssign, at, lval, rval, kind
	return n
}

// NewAllocate allocates an Allocate (address-of) node.
func (p *Pool) NewAllocate(at Pos, inner Expr, strat AllocStrat) *Allocate {
	n := p.allocates.Alloc()
	n.T, n.At, n.Inner, n.Strat = TagAllocate, at, inner, strat
	return n
}

// NewDeref allocates a Deref.
func (p *Pool) NewDeref(at Pos, inner Expr) *Deref {
	n := p.derefs.Alloc()
	n.T, n.At, n.Inner = TagDeref, at, inner
	return n
}

// NewElement allocates an Element.
func (p *Pool) NewElement(at Pos, owner Expr, field *NameUse) *Element {
	n := p.elements.Alloc()
	n.T, n.At, n.Owner, n.Field = TagElement, at, owner, field
	return n
}

// NewCast allocates a Cast.
func (p *Pool) NewCast(at Pos, inner Expr, target Type) *Cast {
	n := p.casts.Alloc()
	n.T, n.At, n.Inner, n.Target = TagCast, at, inner, target
	return n
}

// NewSizeOf allocates a SizeOf.
func (p *Pool) NewSizeOf(at Pos, operand Type) *SizeOf {
	n := p.sizeOfs.Alloc()
	n.T, n.At, n.Operand = TagSizeOf, at, operand
	return n
}

// NewLogic allocates a Logic.
func (p *Pool) NewLogic(at Pos, op LogicOp, lhs, rhs Expr) *Logic {
	n := p.logics.Alloc()
	n.T, n.At, n.Op, n.LHS, n.RHS = TagLogic, at, op, lhs, rhs
	return n
}

// NewIf allocates an empty If.
func (p *Pool) NewIf(at Pos) *If {
	n := p.ifs.Alloc()
	n.T, n.At = TagIf, at
	return n
}

// NewTupleExpr allocates an empty TupleExpr.
func (p *Pool) NewTupleExpr(at Pos) *TupleExpr {
	n := p.tupleExprs.Alloc()
	n.T, n.At = TagTupleExpr, at
	return n
}

// NewReturn allocates a Return.
func (p *Pool) NewReturn(at Pos, value Expr) *Return {
	n := p.returns.Alloc()
	n.T, n.At, n.Value = TagReturn, at, value
	return n
}

// NewBreak allocates a Break.
func (p *Pool) NewBreak(at Pos, label Symbol) *Break {
	n := p.breaks.Alloc()
	n.T, n.At, n.Label = TagBreak, at, label
	return n
}

// NewContinue allocates a Continue.
func (p *Pool) NewContinue(at Pos, label Symbol) *Continue {
	n := p.continues.Alloc()
	n.T, n.At, n.Label = TagContinue, at, label
	return n
}
