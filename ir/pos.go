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

import "fmt"

// Pos is a source-location handle: a file identifier plus byte offset and
// the line/column the tokenizer computed for it. The tokenizer/parser
// (an external collaborator, per the front-end's scope) is the only
// producer of Pos values from raw source text; the semantic passes only
// ever copy or forward them onto diagnostics.
type Pos struct {
	File   string
	Offset int
	Line   int
	Col    int
}

// String renders a Pos the way diagnostics anchor messages: file:line:col.
func (p Pos) String() string {
	if p.File == "" {
		return "-"
	}

	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// NoPos is the zero Pos, used for nodes with no direct source origin
// (the default literal types type-check creates, hand-built fixtures).
// An inserted cast takes the position of the expression it wraps.
var NoPos = Pos{}
