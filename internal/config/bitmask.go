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

// Package config holds the compiler's ambient run options: a generic
// bitmask for boolean pass toggles, plus the enums built on it.
package config

// BitMask is a generic bitmask for managing binary flags.
type BitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	value T
}

// NewBitMask creates a [BitMask] with the given flags already enabled.
func NewBitMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables flag depending on value.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets flag in the bitmask.
func (b *BitMask[T]) Enable(flag T) {
	b.value |= flag
}

// Disable clears flag in the bitmask.
func (b *BitMask[T]) Disable(flag T) {
	b.value &^= flag
}

// Enabled reports whether flag is set.
func (b BitMask[T]) Enabled(flag T) bool {
	return b.value&flag != 0
}
