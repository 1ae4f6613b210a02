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

// Package resolve is the name-resolution pass: the first of the three
// passes [sema.Run] drives over a [ir.Program]. It assigns scope depth
// to every declaration, rejects duplicate names within one scope,
// binds every [ir.NameUse] to the declaration it refers to (honoring
// module-qualified lookup), and leaves the name table it built
// available to later passes for diagnostics that need to point back at
// a declaration site.
package resolve

import (
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/dispatch"
	"github.com/cone-lang/conec/internal/nametab"
	"github.com/cone-lang/conec/internal/seq"
	"github.com/cone-lang/conec/ir"
)

// pass implements [dispatch.Visitor] for name resolution. depth tracks
// the current scope nesting so a local [ir.VarDecl.ScopeDepth] can be
// stamped as it is hooked. Every declaration that lives in a Named/List
// container (Program.Decls, ModuleDecl.Decls, a signature's Params) is
// hooked exactly once, by the handler that owns that container; hookedBy
// tracks which *ir.VarDecl nodes were hooked that way so the VarDecl
// visit case below — reached again when Walk descends into the
// container's elements — doesn't hook them a second time as if they
// were a block-local declaration.
type pass struct {
	table    *nametab.Table
	diags    *diag.Sink
	modules  map[ir.Symbol]*ir.ModuleDecl
	depth    int
	hookedBy map[*ir.VarDecl]bool
}

// Run resolves every name in prog and returns the populated name table
// together with whatever diagnostics were recorded. Later passes should
// not proceed past a non-empty Sink: [sema.Run] enforces that gate.
func Run(prog *ir.Program) (*nametab.Table, *diag.Sink) {
	p := &pass{
		table:    nametab.New(),
		diags:    &diag.Sink{},
		modules:  make(map[ir.Symbol]*ir.ModuleDecl),
		hookedBy: make(map[*ir.VarDecl]bool),
	}

	for i := 0; i < prog.Decls.Len(); i++ {
		if m, ok := prog.Decls.At(i).(*ir.ModuleDecl); ok {
			p.modules[m.Name] = m
		}
	}

	dispatch.Walk(p, prog)

	return p.table, p.diags
}

// Visit implements [dispatch.Visitor].
func (p *pass) Visit(n ir.Node) dispatch.Visitor {
	if n == nil {
		return nil
	}

	switch t := n.(type) {
	case *ir.Program:
		// Top-level bindings stay hooked after the walk: they are part of
		// the populated table Run returns to later passes.
		p.hookDecls(t, declSlice(t.Decls))
		return p

	case *ir.ModuleDecl:
		p.hookNamedDecls(t, &t.Decls)
		return p.withLeave(func() { p.table.Unhook(t) })

	case *ir.FuncDecl:
		p.depth++
		p.hookFuncParams(t)
		return p.withLeave(func() {
			p.table.Unhook(t)
			p.depth--
		})

	case *ir.Block:
		p.depth++
		return p.withLeave(func() {
			p.table.Unhook(t)
			p.depth--
		})

	case *ir.VarDecl:
		if !p.hookedBy[t] {
			t.ScopeDepth = p.depth
			p.checkDuplicate(t)
			p.table.Hook(p.localOwner(t), t.Name, t)
		}

		return p

	case *ir.NameUse:
		p.resolveNameUse(t)
		return p

	default:
		return p
	}
}

// declSlice flattens a Program's decl list into a plain slice so it
// shares hookDecls with any other flat decl container.
func declSlice(decls seq.List[ir.Decl]) []ir.Decl {
	out := make([]ir.Decl, decls.Len())
	for i := range out {
		out[i] = decls.At(i)
	}

	return out
}

// localOwner picks the Hook owner for a block-local declaration: the
// nearest enclosing node the builder recorded in Owner (typically the
// [ir.FuncDecl] or [ir.Block] it was declared in), falling back to the
// declaration itself so every Hook still has a well-defined Unhook key.
func (p *pass) localOwner(d *ir.VarDecl) ir.Node {
	if d.Owner != nil {
		return d.Owner
	}

	return d
}

// checkDuplicate flags d only when a binding for the same name is
// already live at d's own scope depth: an inner declaration shadowing
// an outer one is legal and must not be reported. The new decl's depth
// must already be stamped (VarDecl.ScopeDepth, or implicitly 0 for the
// top-level-only decl kinds) by the time this runs.
func (p *pass) checkDuplicate(d ir.Decl) {
	existing, ok := p.table.Lookup(d.DeclName())
	if !ok || declDepth(existing) != declDepth(d) {
		return
	}

	p.diags.Report(diag.DuplicateName, d, "%q already declared at %s", d.DeclName(), existing.Pos())
}

// declDepth reports the scope depth a declaration was hooked at.
// Only VarDecl (which doubles as parameter and block-local) tracks
// ScopeDepth; the remaining decl kinds only ever appear at top level.
func declDepth(d ir.Node) int {
	if vd, ok := d.(*ir.VarDecl); ok {
		return vd.ScopeDepth
	}

	return 0
}

// hookDecls hooks a flat list of top-level declarations (Program.Decls)
// under owner, marking any *ir.VarDecl among them so its own visit case
// doesn't re-hook it as a local.
func (p *pass) hookDecls(owner ir.Node, decls []ir.Decl) {
	for _, d := range decls {
		p.checkDuplicate(d)
		p.table.Hook(owner, d.DeclName(), d)

		if vd, ok := d.(*ir.VarDecl); ok {
			p.hookedBy[vd] = true
		}
	}
}

// hookNamedDecls hooks a module's name-indexed declaration list the
// same way hookDecls hooks Program.Decls.
func (p *pass) hookNamedDecls(owner ir.Node, decls *seq.Named[ir.Decl]) {
	for i := 0; i < decls.Len(); i++ {
		_, d := decls.At(i)
		p.checkDuplicate(d)
		p.table.Hook(owner, d.DeclName(), d)

		if vd, ok := d.(*ir.VarDecl); ok {
			p.hookedBy[vd] = true
		}
	}
}

// hookFuncParams hooks a function's parameters for the duration of its
// body, marking each as already hooked so the VarDecl visit case
// doesn't hook it again when Walk descends into the signature.
func (p *pass) hookFuncParams(fn *ir.FuncDecl) {
	if fn.Sig == nil {
		return
	}

	for i := 0; i < fn.Sig.Params.Len(); i++ {
		_, param := fn.Sig.Params.At(i)
		param.ScopeDepth = p.depth
		p.checkDuplicate(param)
		p.table.Hook(fn, param.Name, param)
		p.hookedBy[param] = true
	}
}

func (p *pass) resolveNameUse(use *ir.NameUse) {
	if use.Mod != "" {
		mod, ok := p.modules[use.Mod]
		if !ok {
			p.diags.Report(diag.UnresolvedName, use, "no such module %q", use.Mod)
			return
		}

		decl, ok := nametab.LookupIn(mod, use.Name)
		if !ok {
			p.diags.Report(diag.UnresolvedName, use, "%s.%s is not declared", use.Mod, use.Name)
			return
		}

		use.Decl = decl
		return
	}

	decl, ok := p.table.Lookup(use.Name)
	if !ok {
		p.diags.Report(diag.UnresolvedName, use, "%q is not declared", use.Name)
		return
	}

	use.Decl = decl
}

// withLeave wraps p in a [dispatch.Visitor] that delegates every
// non-nil Visit call back to p (so a node's children get the pass's
// normal per-tag handling) and runs leave exactly once, when Walk
// signals it is done with this node's children via Visit(nil).
func (p *pass) withLeave(leave func()) dispatch.Visitor {
	return &leaveVisitor{pass: p, leave: leave}
}

type leaveVisitor struct {
	pass  *pass
	leave func()
}

func (l *leaveVisitor) Visit(n ir.Node) dispatch.Visitor {
	if n == nil {
		l.leave()
		return nil
	}

	return l.pass.Visit(n)
}
