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

// VarDecl is a variable (or function parameter, or struct field)
// declaration: a name, a declared type, an optional initializer, a
// permission, and the scope-depth name resolution assigns it.
type VarDecl struct {
	Header
	Name       Symbol
	Owner      Node // weak back-pointer, used only for name-table unhooking
	Type_      Type
	Init       Expr // nil if there is no initializer
	Perm       Perm
	ScopeDepth int
}

// DeclName implements [Decl].
func (d *VarDecl) DeclName() Symbol { return d.Name }

// FuncDecl is a function (or method) declaration: a signature and a body
// block. Parameters live in Sig.Params at scope depth 1 and are hooked
// into the name table only while the body is being walked (see
// internal/resolve).
type FuncDecl struct {
	Header
	Name  Symbol
	Owner Node
	Sig   *FuncSigType
	Body  *Block
}

// DeclName implements [Decl].
func (d *FuncDecl) DeclName() Symbol { return d.Name }

// TypeDecl is a named type declaration (a struct, alias, etc. bound to a
// name in the current scope).
type TypeDecl struct {
	Header
	Name  Symbol
	Owner Node
	Type_ Type
}

// DeclName implements [Decl].
func (d *TypeDecl) DeclName() Symbol { return d.Name }

// ModuleDecl is a named module: a container of top-level declarations
// reachable both through the global name table and through
// module-qualified lookup.
type ModuleDecl struct {
	Header
	Name  Symbol
	Decls seq.Named[Decl]
}

// DeclName implements [Decl].
func (d *ModuleDecl) DeclName() Symbol { return d.Name }

// Program is the root container: the ordered list of top-level
// declarations (including ModuleDecls) produced by the parser.
type Program struct {
	Header
	Decls seq.List[Decl]
}
