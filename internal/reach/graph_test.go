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

package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cone-lang/conec/internal/reach"
)

func TestReachableLinearChain(t *testing.T) {
	b := reach.NewBuilder()
	p0 := b.Point()
	p1 := b.Point()
	p2 := b.Point()
	b.Edge(p0, p1)
	b.Edge(p1, p2)

	g := b.Build()

	assert.True(t, g.Reachable(p0, p2))
	assert.True(t, g.Reachable(p0, p0))
	assert.False(t, g.Reachable(p2, p0))
}

func TestReachableBranchJoin(t *testing.T) {
	// p0 splits into p1 and p2, both joining at p3; p4 is a diverging
	// branch (e.g. a return) with no outgoing edge, so p3 is not
	// reachable from it.
	b := reach.NewBuilder()
	p0 := b.Point()
	p1 := b.Point()
	p2 := b.Point()
	p3 := b.Point()
	p4 := b.Point()
	b.Edge(p0, p1)
	b.Edge(p0, p2)
	b.Edge(p1, p3)
	b.Edge(p2, p3)
	b.Edge(p0, p4)

	g := b.Build()

	assert.True(t, g.Reachable(p0, p3))
	assert.True(t, g.Reachable(p1, p3))
	assert.False(t, g.Reachable(p1, p2))
	assert.True(t, g.Reachable(p0, p4))
	assert.False(t, g.Reachable(p4, p3))
}

func TestReachableReusesStateAcrossQueries(t *testing.T) {
	b := reach.NewBuilder()
	p0 := b.Point()
	p1 := b.Point()
	b.Edge(p0, p1)

	g := b.Build()

	for range 3 {
		assert.True(t, g.Reachable(p0, p1))
		assert.False(t, g.Reachable(p1, p0))
	}
}
