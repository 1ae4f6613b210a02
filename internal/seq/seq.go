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

// Package seq provides the two ordered, append-only containers the IR uses
// for statement lists, argument lists, struct fields and function
// parameters: a plain [List] and a name-indexed [Named] sequence.
// Both iterate in insertion order, which codegen depends on for field and
// parameter layout.
package seq

// List is an ordered, append-only sequence with indexed access.
type List[T any] struct {
	items []T
}

// Append adds v to the end of the list.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len reports the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the element at index i.
func (l *List[T]) At(i int) T { return l.items[i] }

// Set replaces the element at index i, the hook handlers use to rewrite a
// statement or argument in place without reallocating the list.
func (l *List[T]) Set(i int, v T) { l.items[i] = v }

// Slice returns the elements in insertion order. Callers must not retain a
// reference to the backing array across a subsequent Append.
func (l *List[T]) Slice() []T { return l.items }

// Named is an ordered sequence of (name, value) pairs supporting linear
// lookup by name. Used for struct fields and function parameters, where
// declaration order drives codegen and names must be looked up.
type Named[T any] struct {
	names []string
	items []T
}

// Append adds a (name, v) pair to the end of the sequence.
func (n *Named[T]) Append(name string, v T) {
	n.names = append(n.names, name)
	n.items = append(n.items, v)
}

// Len reports the number of elements.
func (n *Named[T]) Len() int { return len(n.items) }

// At returns the i-th (name, value) pair in insertion order.
func (n *Named[T]) At(i int) (string, T) { return n.names[i], n.items[i] }

// Lookup returns the value bound to name and whether it was found. The
// first match in insertion order wins.
func (n *Named[T]) Lookup(name string) (T, bool) {
	for i, nm := range n.names {
		if nm == name {
			return n.items[i], true
		}
	}

	var zero T

	return zero, false
}

// Slice returns the values in insertion order.
func (n *Named[T]) Slice() []T { return n.items }
