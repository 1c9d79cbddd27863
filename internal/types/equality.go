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

func stripCV(q Qualifiers) Qualifiers { return q &^ (Const | Volatile) }

// Eql implements structural type equality (§4.5). Both operands are
// canonicalized (Standard mode) first. checkQualifiers controls
// whether const/volatile must also match at the top level; atomic
// always must match regardless.
func Eql(a, b Type, c Comp, checkQualifiers bool) bool {
	a = Canonicalize(a, Standard)
	b = Canonicalize(b, Standard)

	if a.Quals.Has(Atomic) != b.Quals.Has(Atomic) {
		return false
	}
	if checkQualifiers {
		if a.Quals.Has(Const) != b.Quals.Has(Const) {
			return false
		}
		if a.Quals.Has(Volatile) != b.Quals.Has(Volatile) {
			return false
		}
	}

	aAlign, aAlignOK := Alignof(a, c)
	bAlign, bAlignOK := Alignof(b, c)
	if aAlignOK != bAlignOK {
		return false
	}
	if aAlignOK && aAlign != bAlign {
		return false
	}

	aPtr, bPtr := IsPointerLike(a.Spec), IsPointerLike(b.Spec)
	aFn, bFn := IsFuncLike(a.Spec), IsFuncLike(b.Spec)
	aArr, bArr := a.Spec.IsArrayKind() && !a.Spec.IsDecayed(), b.Spec.IsArrayKind() && !b.Spec.IsDecayed()

	switch {
	case aPtr && bPtr:
		return Eql(ElemType(a), ElemType(b), c, checkQualifiers)

	case aFn && bFn:
		fa, fb := a.data.(*funcData), b.data.(*funcData)
		if len(fa.Params) != len(fb.Params) {
			return false
		}
		if !Eql(fa.Return, fb.Return, c, false) {
			return false
		}
		for i := range fa.Params {
			pa := fa.Params[i].Ty
			pb := fb.Params[i].Ty
			pa.Quals = stripCV(pa.Quals)
			pb.Quals = stripCV(pb.Quals)
			if !Eql(pa, pb, c, checkQualifiers) {
				return false
			}
		}
		return true

	case aArr && bArr:
		al, aok := ArrayLen(a)
		bl, bok := ArrayLen(b)
		if aok && bok && al != bl {
			return false
		}
		return Eql(ElemType(a), ElemType(b), c, checkQualifiers)

	case a.Spec == Vector && b.Spec == Vector:
		al, _ := ArrayLen(a)
		bl, _ := ArrayLen(b)
		if al != bl {
			return false
		}
		return Eql(ElemType(a), ElemType(b), c, checkQualifiers)

	case a.Spec == Struct && b.Spec == Struct, a.Spec == Union && b.Spec == Union:
		return a.data.(*recordData) == b.data.(*recordData)

	case a.Spec == Enum && b.Spec == Enum:
		return a.data.(*enumData) == b.data.(*enumData)

	default:
		if a.Spec != b.Spec {
			return false
		}
		if a.Spec == BitInt || a.Spec == ComplexBitInt {
			ad, bd := a.data.(*bitIntData), b.data.(*bitIntData)
			return ad.Bits == bd.Bits && ad.Signed == bd.Signed
		}
		return true
	}
}
