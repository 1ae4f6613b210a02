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

package main

import (
	"errors"

	"github.com/cone-lang/conec/ir"
)

// Frontend turns source text into an [ir.Program]. Tokenizing and
// parsing Cone source is a separate collaborator this module does not
// implement; conec is wired against whichever Frontend its build
// links in.
type Frontend interface {
	Parse(pool *ir.Pool, filename string, src []byte) (*ir.Program, error)
}

// errNoFrontend is returned by [unimplementedFrontend], the stub conec
// links against until a real tokenizer/parser is wired in.
var errNoFrontend = errors.New("conec: no Frontend wired in; tokenizing/parsing is not part of this module")

// unimplementedFrontend satisfies [Frontend] with a stub that always
// fails, so `cmd/conec` compiles and its exit-code plumbing is
// exercisable end to end before a real front end exists.
type unimplementedFrontend struct{}

func (unimplementedFrontend) Parse(_ *ir.Pool, _ string, _ []byte) (*ir.Program, error) {
	return nil, errNoFrontend
}
