// Copyright 2024 The ctypes Authors
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

package types

// CanonMode selects how Canonicalize treats qualifiers accumulated
// while unwrapping typeof.
type CanonMode int

const (
	// Standard discards the accumulated qualifiers when the final type
	// is a pointer or array: they applied to the typeof expression
	// itself, not to its element.
	Standard CanonMode = iota
	// PreserveQuals retains them, used by ElemType to propagate e.g.
	// the const of `typeof(const int[4])` onto the array's element.
	PreserveQuals
)

// Canonicalize strips a chain of Attributed and typeof_* wrappers down
// to the underlying type, merging every typeof layer's qualifiers via
// MergeAll; an Attributed layer is unwrapped without carrying its own
// qualifiers over. It always terminates: each step strictly unwraps one more
// layer, and Type payloads form a DAG with no cycles back through a
// wrapper once built.
func Canonicalize(t Type, mode CanonMode) Type {
	acc := Qualifiers(0)
	cur := t
	for {
		switch cur.Spec {
		case Attributed:
			cur = cur.data.(*attributedData).Base

		case TypeofType, DecayedTypeofType:
			acc = MergeAll(acc, cur.Quals)
			inner := cur.data.(*subTypeData).Elem
			if cur.Spec == DecayedTypeofType {
				inner = DecayArray(inner)
			}
			cur = inner

		case TypeofExpr, DecayedTypeofExpr:
			acc = MergeAll(acc, cur.Quals)
			inner := cur.data.(*exprData).Ty
			if cur.Spec == DecayedTypeofExpr {
				inner = DecayArray(inner)
			}
			cur = inner

		default:
			if mode == Standard && (IsPointerLike(cur.Spec) || (cur.Spec.IsArrayKind() && !cur.Spec.IsDecayed())) {
				acc = 0
			}
			cur.Quals = MergeAll(cur.Quals, acc)
			return cur
		}
	}
}
