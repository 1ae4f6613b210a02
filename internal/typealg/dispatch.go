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

package typealg

import "github.com/cone-lang/conec/ir"

// Score rates how well a call's argument list matches a candidate
// function signature: 0 means the candidate is rejected outright (wrong
// arity with no defaults to cover the shortfall, a non-coercible
// argument, or a permission mismatch on a reference parameter); 1 means
// every supplied argument matches exactly; a value n greater than 1
// means n-1 supplied arguments needed a coercion. A short
// argument list is accepted when every parameter beyond the supplied
// count has a declared default (sig.Params' Init); the caller fills
// those in before coercing. [Select] takes the smallest positive score,
// ties going to the first-declared candidate.
func Score(sig *ir.FuncSigType, args []ir.Expr) int {
	if len(args) > sig.Params.Len() {
		return 0
	}

	for i := len(args); i < sig.Params.Len(); i++ {
		_, param := sig.Params.At(i)
		if param.Init == nil {
			return 0
		}
	}

	score := 1

	for i, arg := range args {
		_, param := sig.Params.At(i)
		want := param.Type_

		if pref, ok := want.(*ir.RefType); ok {
			aref, ok := arg.ValueType().(*ir.RefType)
			if !ok || !pref.Perm.Matches(aref.Perm) || !Equal(pref.Elem, aref.Elem) {
				return 0
			}

			continue
		}

		if Equal(arg.ValueType(), want) {
			continue
		}

		from, fromOK := arg.ValueType().(*ir.PrimType)
		to, toOK := want.(*ir.PrimType)
		if !fromOK || !toOK || !widens(from, to) {
			return 0
		}

		score++
	}

	return score
}

// Candidate pairs a function declaration with the signature Score
// should rate it against (its own, for a free function; the method's,
// for a bound method call).
type Candidate struct {
	Decl *ir.FuncDecl
	Sig  *ir.FuncSigType
}

// Select scores every candidate against args and returns the
// first-declared candidate with the smallest positive score. ok is
// false if every candidate scored 0.
func Select(candidates []Candidate, args []ir.Expr) (Candidate, int, bool) {
	bestIdx := -1
	bestScore := 0

	for i, c := range candidates {
		s := Score(c.Sig, args)
		if s == 0 {
			continue
		}

		if bestIdx == -1 || s < bestScore {
			bestIdx, bestScore = i, s
		}
	}

	if bestIdx == -1 {
		return Candidate{}, 0, false
	}

	return candidates[bestIdx], bestScore, true
}
