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

// Package diag is the accumulate-and-continue diagnostics sink every
// pass reports into. A pass never panics or short-circuits on a
// semantic error: it records a [Diagnostic] and keeps walking, so a
// single run surfaces every error in the tree rather than just the
// first. Code generation (out of this module's scope) is only ever
// gated on [Sink.Count] being zero once every pass has run.
package diag

import (
	"fmt"

	"github.com/cone-lang/conec/ir"
)

// Code is the closed set of semantic error kinds this compiler detects.
type Code uint8

const (
	// DuplicateName is a name declared twice in the same scope.
	DuplicateName Code = iota
	// UnresolvedName is a name use with no visible binding.
	UnresolvedName
	// MissingType is a declaration with neither a declared type nor an
	// initializer to infer one from.
	MissingType
	// TypeMismatch is an expression whose type cannot satisfy its
	// context, and cannot be coerced into one that does.
	TypeMismatch
	// PermMismatch is a reference whose permission does not satisfy the
	// permission required by its context.
	PermMismatch
	// ArityMismatch is a call with the wrong number of arguments.
	ArityMismatch
	// NoSuchMember is a field or method access naming a member the
	// receiver's struct type does not declare.
	NoSuchMember
	// NoMethod is a method call whose name exists on the receiver's
	// struct type, but for which no overload accepts the given
	// arguments.
	NoMethod
	// NotCallable is a call whose callee is not a function-typed value.
	NotCallable
	// NotAssignable is an assignment whose lval is not a mutable
	// storage location (e.g. an imm or const binding).
	NotAssignable
	// NotDereferenceable is a dereference of a non-reference-typed
	// expression.
	NotDereferenceable
	// UnreachableAfterMove is a use of a uni-owned value that is no
	// longer live because an earlier statement moved it.
	UnreachableAfterMove
	// AmbiguousOverload is a call for which more than one candidate
	// scored equally best (only possible with user error in signature
	// design; the dispatcher itself always breaks ties deterministically,
	// this code is reserved for diagnostics layered on top of it).
	AmbiguousOverload
	// BadReturnArity is a return statement whose value count does not
	// match the function's declared return arity.
	BadReturnArity
	// InternalError marks a diagnostic raised by the compiler's own
	// invariant checks rather than a user source error.
	InternalError
)

// String renders the diagnostic code name.
func (c Code) String() string {
	switch c {
	case DuplicateName:
		return "DuplicateName"
	case UnresolvedName:
		return "UnresolvedName"
	case MissingType:
		return "MissingType"
	case TypeMismatch:
		return "TypeMismatch"
	case PermMismatch:
		return "PermMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case NoSuchMember:
		return "NoSuchMember"
	case NoMethod:
		return "NoMethod"
	case NotCallable:
		return "NotCallable"
	case NotAssignable:
		return "NotAssignable"
	case NotDereferenceable:
		return "NotDereferenceable"
	case UnreachableAfterMove:
		return "UnreachableAfterMove"
	case AmbiguousOverload:
		return "AmbiguousOverload"
	case BadReturnArity:
		return "BadReturnArity"
	case InternalError:
		return "InternalError"
	default:
		return "?code"
	}
}

// Diagnostic is one reported semantic error.
type Diagnostic struct {
	Code    Code
	Pos     ir.Pos
	Message string
}

// String renders the diagnostic the way a command-line front end would
// print it: "file:line:col: Code: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Code, d.Message)
}

// Sink accumulates diagnostics across an entire compilation run. The
// zero value is ready to use.
type Sink struct {
	diags []Diagnostic
}

// Report records a diagnostic and keeps going; it never aborts the
// walk that called it.
func (s *Sink) Report(code Code, at ir.Node, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Code:    code,
		Pos:     at.Pos(),
		Message: fmt.Sprintf(format, args...),
	})
}

// Internal records an [InternalError] diagnostic, for compiler bugs
// detected by an invariant check rather than a user source error.
func (s *Sink) Internal(at ir.Node, format string, args ...any) {
	s.Report(InternalError, at, format, args...)
}

// Count reports how many diagnostics have been recorded.
func (s *Sink) Count() int { return len(s.diags) }

// All returns every recorded diagnostic, in report order.
func (s *Sink) All() []Diagnostic { return s.diags }
