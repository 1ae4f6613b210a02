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

package nametab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cone-lang/conec/internal/nametab"
	"github.com/cone-lang/conec/ir"
)

func TestHookAndLookup(t *testing.T) {
	table := nametab.New()
	pool := ir.NewPool()
	owner := pool.NewBlock(ir.NoPos)
	decl := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermImm)

	table.Hook(owner, "x", decl)

	got, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Same(t, ir.Node(decl), got)
}

func TestLookupMissingNameFails(t *testing.T) {
	table := nametab.New()

	_, ok := table.Lookup("nope")

	assert.False(t, ok)
}

func TestUnhookRestoresOuterShadowedBinding(t *testing.T) {
	table := nametab.New()
	pool := ir.NewPool()

	outer := pool.NewBlock(ir.NoPos)
	outerDecl := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermImm)
	table.Hook(outer, "x", outerDecl)

	inner := pool.NewBlock(ir.NoPos)
	innerDecl := pool.NewVarDecl(ir.NoPos, "x", nil, ir.PermMut)
	table.Hook(inner, "x", innerDecl)

	got, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Same(t, ir.Node(innerDecl), got)

	table.Unhook(inner)

	got, ok = table.Lookup("x")
	require.True(t, ok)
	assert.Same(t, ir.Node(outerDecl), got)

	table.Unhook(outer)

	_, ok = table.Lookup("x")
	assert.False(t, ok)
}

func TestUnhookOnlyPopsOwnersOwnBindings(t *testing.T) {
	table := nametab.New()
	pool := ir.NewPool()

	owner := pool.NewBlock(ir.NoPos)
	declA := pool.NewVarDecl(ir.NoPos, "a", nil, ir.PermImm)
	declB := pool.NewVarDecl(ir.NoPos, "b", nil, ir.PermImm)
	table.Hook(owner, "a", declA)
	table.Hook(owner, "b", declB)

	sibling := pool.NewBlock(ir.NoPos)
	declC := pool.NewVarDecl(ir.NoPos, "c", nil, ir.PermImm)
	table.Hook(sibling, "c", declC)

	table.Unhook(owner)

	_, ok := table.Lookup("a")
	assert.False(t, ok)
	_, ok = table.Lookup("b")
	assert.False(t, ok)

	got, ok := table.Lookup("c")
	require.True(t, ok)
	assert.Same(t, ir.Node(declC), got)
}

func TestLookupInResolvesModuleQualifiedName(t *testing.T) {
	pool := ir.NewPool()
	mod := pool.NewModule(ir.NoPos, "mathx")
	decl := pool.NewVarDecl(ir.NoPos, "pi", nil, ir.PermImm)
	mod.Decls.Append("pi", decl)

	got, ok := nametab.LookupIn(mod, "pi")

	require.True(t, ok)
	assert.Same(t, ir.Decl(decl), got)
}

func TestLookupInMissingNameFails(t *testing.T) {
	pool := ir.NewPool()
	mod := pool.NewModule(ir.NoPos, "mathx")

	_, ok := nametab.LookupIn(mod, "nope")

	assert.False(t, ok)
}
