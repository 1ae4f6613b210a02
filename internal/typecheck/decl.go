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

package typecheck

import (
	"github.com/cone-lang/conec/internal/diag"
	"github.com/cone-lang/conec/internal/typealg"
	"github.com/cone-lang/conec/ir"
)

// checkVarDecl applies the three-way rule a variable declaration
// follows: a declared type with no initializer stands as written; an
// initializer with no declared type infers the declaration's type
// from it; and a declaration with neither is a [diag.MissingType]
// error, since every declaration must end up typed.
func (p *pass) checkVarDecl(d *ir.VarDecl) {
	switch {
	case d.Type_ != nil && d.Init != nil:
		slot := &d.Init
		if !typealg.Coerce(p.pool, d.Type_, slot) {
			p.diags.Report(diag.TypeMismatch, d.Init,
				"cannot initialize %q of type %s with value of type %s",
				d.Name, typeName(d.Type_), typeName(d.Init.ValueType()))

			return
		}

		d.Init = *slot

	case d.Type_ != nil:
		// Declared, uninitialized: stands as written.

	case d.Init != nil:
		d.Type_ = d.Init.ValueType()

	default:
		p.diags.Report(diag.MissingType, d, "%q has neither a declared type nor an initializer", d.Name)
	}
}

func typeName(t ir.Type) string {
	if t == nil {
		return "<untyped>"
	}

	return t.Tag().String()
}
