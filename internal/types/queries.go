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

// This file implements the category predicates and accessors of §4.3.
// Every predicate here transparently unwraps TypeofType, TypeofExpr,
// and Attributed before inspecting the specifier, by canonicalizing in
// Standard mode first.

func unwrap(t Type) Type { return Canonicalize(t, Standard) }

// IsPointerLike reports whether spec is Pointer or a decayed array
// specifier — the set of specifiers that behave like a pointer for
// purposes of qualifier validation (e.g. restrict requires one of
// these).
func IsPointerLike(spec Specifier) bool {
	return spec == Pointer || (spec.IsArrayKind() && spec.IsDecayed())
}

// IsFuncLike reports whether spec is one of the three function kinds.
func IsFuncLike(spec Specifier) bool {
	return spec == Func || spec == VarArgsFunc || spec == OldStyleFunc
}

func IsInt(t Type) bool {
	s := unwrap(t).Spec
	return s.IsRealInt() || s.IsComplexInt() || s == BitInt || s == ComplexBitInt
}

func IsComplex(t Type) bool {
	s := unwrap(t).Spec
	return s.IsComplexInt() || s.IsComplexFloat() || s == ComplexBitInt
}

func IsReal(t Type) bool { return !IsComplex(t) }

func IsFloat(t Type) bool {
	s := unwrap(t).Spec
	return s.IsRealFloat() || s.IsComplexFloat()
}

func IsPtr(t Type) bool { return IsPointerLike(unwrap(t).Spec) }

func IsFunc(t Type) bool { return IsFuncLike(unwrap(t).Spec) }

// IsArray reports whether t is one of the six array kinds in its
// original (non-decayed) form.
func IsArray(t Type) bool {
	s := unwrap(t).Spec
	return s.IsArrayKind() && !s.IsDecayed()
}

// IsDecayed reports whether t is a decayed array. An assertion guards
// that no decayed_typeof_* tag ever escapes Canonicalize to reach
// here: Canonicalize always resolves typeof wrappers down to a
// concrete specifier.
func IsDecayed(t Type) bool {
	s := unwrap(t).Spec
	if s.IsTypeofKind() {
		panic("types: typeof specifier escaped canonicalization")
	}
	return s.IsArrayKind() && s.IsDecayed()
}

func IsRecord(t Type) bool {
	s := unwrap(t).Spec
	return s == Struct || s == Union
}

func IsEnum(t Type) bool { return unwrap(t).Spec == Enum }

func IsVoid(t Type) bool { return unwrap(t).Spec == Void }

func IsBool(t Type) bool { return unwrap(t).Spec == Bool }

func IsNullptrT(t Type) bool { return unwrap(t).Spec == NullptrT }

// IsScalar = isInt ∨ isFloat ∨ isPtr ∨ is(nullptr_t), per §4.3/§8.
func IsScalar(t Type) bool {
	u := unwrap(t)
	return IsInt(u) || IsFloat(u) || IsPtr(u) || u.Spec == NullptrT
}

// IsIncomplete reports whether t names a type with no known size: an
// incomplete record/enum, void, or one of the array kinds that have no
// fixed element count.
func IsIncomplete(t Type) bool {
	u := unwrap(t)
	switch u.Spec {
	case Void:
		return true
	case Struct, Union:
		return u.data.(*recordData).incomplete()
	case Enum:
		return u.data.(*enumData).incomplete()
	case IncompleteArray, DecayedIncompleteArray,
		VariableLenArray, DecayedVariableLenArray,
		UnspecifiedVariableLenArray, DecayedUnspecifiedVariableLenArray:
		return true
	}
	return false
}

// IsAnonymousRecord recognizes records whose interned name begins with
// "(" — the engine's own convention for naming anonymous aggregates,
// chosen precisely because it can never collide with a real C
// identifier.
func IsAnonymousRecord(t Type, interner StringInterner) bool {
	u := unwrap(t)
	if u.Spec != Struct && u.Spec != Union {
		return false
	}
	name := u.data.(*recordData).Name
	if name == NoName {
		return true
	}
	bytes := interner.Lookup(name)
	return len(bytes) > 0 && bytes[0] == '('
}

// ElemType returns the pointee/element type of t. For a typeof-wrapped
// array or pointer it canonicalizes with PreserveQuals so that e.g.
// `typeof(const int[4])`'s element correctly comes back const (§4.2,
// scenario 5 of §8). For Attributed it recurses into the base; for
// Invalid it returns Invalid.
func ElemType(t Type) Type {
	switch t.Spec {
	case Invalid:
		return InvalidType()
	case Attributed:
		return ElemType(t.data.(*attributedData).Base)
	case TypeofType, DecayedTypeofType, TypeofExpr, DecayedTypeofExpr:
		canon := Canonicalize(t, PreserveQuals)
		elem := elemTypeDirect(canon)
		elem.Quals = MergeAll(elem.Quals, canon.Quals)
		return elem
	default:
		return elemTypeDirect(t)
	}
}

func elemTypeDirect(t Type) Type {
	switch {
	case t.Spec == Pointer:
		return t.data.(*subTypeData).Elem
	case t.Spec == UnspecifiedVariableLenArray || t.Spec == DecayedUnspecifiedVariableLenArray:
		return t.data.(*subTypeData).Elem
	case t.Spec == VariableLenArray || t.Spec == DecayedVariableLenArray:
		return t.data.(*exprData).Ty
	case t.Spec.IsArrayKind():
		return t.data.(*arrayData).Elem
	default:
		return InvalidType()
	}
}

// ReturnType returns a function type's return type, unwrapping typeof
// and attributed wrappers first.
func ReturnType(t Type) Type {
	u := unwrap(t)
	if !IsFuncLike(u.Spec) {
		return InvalidType()
	}
	return u.data.(*funcData).Return
}

// Params returns a function type's parameter list.
func Params(t Type) []Param {
	u := unwrap(t)
	if !IsFuncLike(u.Spec) {
		return nil
	}
	return u.data.(*funcData).Params
}

// ArrayLen returns an array type's element count and true, or
// (0, false) if the type has no statically-known length.
func ArrayLen(t Type) (uint64, bool) {
	u := unwrap(t)
	switch u.Spec {
	case Array, DecayedArray, StaticArray, DecayedStaticArray, Vector:
		return u.data.(*arrayData).Len, true
	}
	return 0, false
}

// GetRecord returns the record payload of a struct/union type, or nil.
func GetRecord(t Type) *recordData {
	u := unwrap(t)
	if u.Spec != Struct && u.Spec != Union {
		return nil
	}
	return u.data.(*recordData)
}

// GetEnum returns the enum payload of an enum type, or nil.
func GetEnum(t Type) *enumData {
	u := unwrap(t)
	if u.Spec != Enum {
		return nil
	}
	return u.data.(*enumData)
}

// RecordFields returns a completed record's fields, or nil if it is
// incomplete or not a record.
func RecordFields(t Type) []RecordField {
	r := GetRecord(t)
	if r == nil || r.incomplete() {
		return nil
	}
	return r.Fields
}

// EnumFields returns a completed enum's enumerators, or nil if it is
// incomplete or not an enum.
func EnumFields(t Type) []EnumField {
	e := GetEnum(t)
	if e == nil || e.incomplete() {
		return nil
	}
	return e.Fields
}

// EnumTagType returns an enum's underlying integer type; Int for an
// incomplete enum, per §4.3's integer-promotion rule for incomplete
// enums.
func EnumTagType(t Type) Type {
	e := GetEnum(t)
	if e == nil {
		return InvalidType()
	}
	if e.incomplete() {
		return Type{Spec: Int}
	}
	return e.TagTy
}
