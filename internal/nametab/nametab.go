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

// Package nametab is the name-resolution symbol table: a stack of
// bindings per name, pushed on scope/declaration entry and popped on
// scope exit. [internal/resolve] pops a module's, function's or block's
// bindings with [Table.Unhook] from the walker's leave callback for that
// node, once its children are done; top-level program bindings stay
// hooked, so the table it returns still holds them.
package nametab

import "github.com/cone-lang/conec/ir"

// binding is one entry on a name's shadow stack.
type binding struct {
	owner ir.Node // the scope-introducing node this binding is hooked to
	decl  ir.Node
}

// Table is the name table: every currently-visible name mapped to its
// shadow stack, innermost binding last. It is not safe for concurrent
// use; name resolution is a single synchronous tree walk.
type Table struct {
	stacks map[ir.Symbol][]binding
	// order records, per owner, the names it hooked, in hook order, so
	// Unhook can pop the exact set an owner pushed without touching
	// bindings pushed by a sibling or parent scope.
	order map[ir.Node][]ir.Symbol
}

// New creates an empty name table.
func New() *Table {
	return &Table{
		stacks: make(map[ir.Symbol][]binding),
		order:  make(map[ir.Node][]ir.Symbol),
	}
}

// Hook binds sym to decl for the duration of owner's scope. owner is
// typically the [ir.Block] or [ir.FuncDecl] being walked; it must be
// passed unchanged to the matching [Table.Unhook] call.
func (t *Table) Hook(owner ir.Node, sym ir.Symbol, decl ir.Node) {
	t.stacks[sym] = append(t.stacks[sym], binding{owner: owner, decl: decl})
	t.order[owner] = append(t.order[owner], sym)
}

// Unhook pops every binding owner pushed, in reverse hook order,
// restoring whatever shadow binding (if any) was visible before.
// [internal/resolve] calls it from the walker's leave callback for
// owner.
func (t *Table) Unhook(owner ir.Node) {
	names := t.order[owner]
	for i := len(names) - 1; i >= 0; i-- {
		sym := names[i]
		stack := t.stacks[sym]
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			delete(t.stacks, sym)
		} else {
			t.stacks[sym] = stack
		}
	}

	delete(t.order, owner)
}

// Lookup returns the innermost visible binding for sym, if any.
func (t *Table) Lookup(sym ir.Symbol) (ir.Node, bool) {
	stack := t.stacks[sym]
	if len(stack) == 0 {
		return nil, false
	}

	return stack[len(stack)-1].decl, true
}

// LookupIn resolves a module-qualified name use: any top-level
// declaration of mod named sym, regardless of where mod was declared
// relative to the use site. Source carries no visibility distinction,
// so a qualified lookup never consults the shadow stack.
func LookupIn(mod *ir.ModuleDecl, sym ir.Symbol) (ir.Decl, bool) {
	return mod.Decls.Lookup(string(sym))
}
