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

// DecayArray converts an array type to its decayed (pointer-like) form
// by bumping its specifier tag, per the decayed=original+1 convention.
// The payload is shared unchanged: ElemType still reaches the original
// element type through it.
func DecayArray(t Type) Type {
	t.Spec = t.Spec.Decay()
	return t
}

// OriginalTypeOfDecayedArray reverses DecayArray.
func OriginalTypeOfDecayedArray(t Type) Type {
	t.Spec = t.Spec.Undecay()
	return t
}

// realToComplexOffset returns the fixed tag offset from a real
// specifier to its _Complex companion: 13 for the integer block, 6 for
// the floating block (§4.8). ok is false for anything outside those
// two blocks, including BitInt, which uses a dedicated companion tag
// instead of an arithmetic offset.
func realToComplexOffset(s Specifier) (int, bool) {
	switch {
	case s.IsRealInt():
		return intBlockLen, true
	case s.IsRealFloat():
		return floatBlockLen, true
	default:
		return 0, false
	}
}

// MakeComplex returns the _Complex companion of an integer or floating
// type. It first canonicalizes away typeof/attributed wrappers — the
// "open question" flagged in spec.md §4.8/§9: whether that's the right
// call for a typeof-wrapped operand is left to the language reference,
// and the current behavior (discard the wrapper) is preserved here
// pending that decision.
func MakeComplex(t Type) Type {
	u := unwrap(t)
	if u.Spec == BitInt {
		u.Spec = ComplexBitInt
		return u
	}
	if off, ok := realToComplexOffset(u.Spec); ok {
		u.Spec = u.Spec + Specifier(off)
		return u
	}
	return InvalidType()
}

// MakeReal returns the real companion of a _Complex type, reversing
// MakeComplex. Invariant #3 of §8: MakeReal(MakeComplex(t)) == t for
// every integer/float t that supports the mapping.
func MakeReal(t Type) Type {
	u := unwrap(t)
	if u.Spec == ComplexBitInt {
		u.Spec = BitInt
		return u
	}
	switch {
	case u.Spec.IsComplexInt():
		u.Spec = u.Spec - Specifier(intBlockLen)
		return u
	case u.Spec.IsComplexFloat():
		u.Spec = u.Spec - Specifier(floatBlockLen)
		return u
	}
	return InvalidType()
}
