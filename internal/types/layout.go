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

// TypeLayout is the ABI-level description of a complete type. All
// fields are in bits.
type TypeLayout struct {
	SizeBits              uint64
	FieldAlignmentBits    uint64
	PointerAlignmentBits  uint64
	RequiredAlignmentBits uint64 // MSVC only; 8 (one byte) elsewhere
}

// Comp bundles the two configuration collaborators every layout query
// needs.
type Comp struct {
	Target *Target
	Lang   LangOpts
}

func alignUp(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}

func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// BitSizeof returns a type's size in bits, or (0, false) if it has no
// statically-known size.
func BitSizeof(t Type, c Comp) (uint64, bool) {
	orig := t
	u := unwrap(t)
	switch {
	case u.Spec == Invalid:
		return 0, false

	case u.Spec == Void:
		return 0, false

	case u.Spec == Bool:
		if c.Target.IsMSVC() {
			return 8, true
		}
		return 1, true

	case u.Spec == BitInt:
		return uint64(u.data.(*bitIntData).Bits), true

	case u.Spec == ComplexBitInt:
		n, _ := BitSizeof(Type{Spec: BitInt, data: u.data}, c)
		return 2 * n, true

	case u.Spec.IsComplexInt() || u.Spec.IsComplexFloat():
		realBits, ok := BitSizeof(MakeReal(u), c)
		if !ok {
			return 0, false
		}
		return 2 * realBits, true

	case u.Spec.IsRealInt():
		return target128Aware(c.Target, u.Spec)

	case u.Spec == LongDouble || u.Spec == Float80:
		return c.Target.PrimitivePrecisionBits(u.Spec)

	case u.Spec.IsRealFloat():
		return c.Target.PrimitiveSizeBits(u.Spec)

	case u.Spec == NullptrT:
		return c.Target.PointerWidthBits, true

	case IsPointerLike(u.Spec):
		return c.Target.PointerWidthBits, true

	case u.Spec.IsArrayKind() && !u.Spec.IsDecayed():
		return arraySizeBits(orig, u, c)

	case IsFuncLike(u.Spec):
		return 8, true

	case u.Spec == Struct || u.Spec == Union:
		rd := u.data.(*recordData)
		if rd.incomplete() || rd.Layout == nil {
			if c.Target.IsMSVC() {
				return 0, true
			}
			return 0, false
		}
		return rd.Layout.SizeBits, true

	case u.Spec == Enum:
		ed := u.data.(*enumData)
		if ed.incomplete() {
			if !ed.Fixed {
				return 0, false
			}
		}
		return BitSizeof(EnumTagType(u), c)

	case u.Spec == SpecialVaStart:
		return c.Target.PointerWidthBits, true
	}
	return 0, false
}

// target128Aware returns the size of a real integer specifier,
// rejecting __int128/unsigned __int128 on targets that do not support
// it (those widths simply have no entry for unsupported targets; the
// builder, not this query, is what raises TypeNotSupportedOnTarget).
func target128Aware(target *Target, spec Specifier) (uint64, bool) {
	if (spec == Int128 || spec == UInt128) && !target.HasInt128() {
		return 0, false
	}
	return target.PrimitiveSizeBits(spec)
}

// arraySizeBits computes the bit size of an array or vector: element
// size times length, aligned up to the array's own alignment — except
// under MSVC, where the size is left byte-exact and not aligned up
// (so a flexible array member can end on a non-aligned boundary).
func arraySizeBits(orig, u Type, c Comp) (uint64, bool) {
	var elem Type
	var length uint64
	switch u.Spec {
	case IncompleteArray, DecayedIncompleteArray:
		if c.Target.IsMSVC() {
			return 0, true
		}
		return 0, false
	case VariableLenArray, DecayedVariableLenArray,
		UnspecifiedVariableLenArray, DecayedUnspecifiedVariableLenArray:
		return 0, false
	case Vector:
		elem = ElemType(u)
		length, _ = ArrayLen(u)
	default:
		ad := u.data.(*arrayData)
		elem, length = ad.Elem, ad.Len
	}
	elemBytes, ok := Sizeof(elem, c)
	if !ok {
		return 0, false
	}
	elemBits := elemBytes * 8
	raw := elemBits * length
	if c.Target.IsMSVC() {
		return raw, true
	}
	alignBits, ok := alignofBits(orig, c)
	if !ok {
		alignBits = elemBits
	}
	return alignUp(raw, alignBits), true
}

// Sizeof returns a type's size in bytes, or (0, false) if unknown.
func Sizeof(t Type, c Comp) (uint64, bool) {
	u := unwrap(t)

	if u.Spec == BitInt || u.Spec == ComplexBitInt {
		bits := uint64(u.data.(*bitIntData).Bits)
		if u.Spec == ComplexBitInt {
			alignBits, _ := Alignof(t, c)
			oneBytes := alignUp((bits+7)/8*8, alignBits) / 8
			return 2 * oneBytes, true
		}
		alignBits, _ := Alignof(t, c)
		byteLen := (bits + 7) / 8
		return alignUp(byteLen*8, alignBits) / 8, true
	}

	switch {
	case u.Spec == Bool || u.Spec == LongDouble || u.Spec == Float80:
		// BitSizeof reports the value width of these; the storage size
		// comes from the target's SizeBits.
		bits, ok := c.Target.PrimitiveSizeBits(u.Spec)
		return bits / 8, ok
	case u.Spec.IsComplexInt() || u.Spec.IsComplexFloat():
		n, ok := Sizeof(MakeReal(u), c)
		return 2 * n, ok
	}

	bits, ok := BitSizeof(t, c)
	if !ok {
		return 0, false
	}
	return bits / 8, true
}

// SizeComparison is the result of SizeCompare.
type SizeComparison int

const (
	SizeLess SizeComparison = iota
	SizeGreater
	SizeEqual
	SizeIndeterminate
)

// SizeCompare compares the sizes of a and b without requiring either
// to have a statically-known size.
func SizeCompare(a, b Type, c Comp) SizeComparison {
	as, aok := Sizeof(a, c)
	bs, bok := Sizeof(b, c)
	if !aok || !bok {
		return SizeIndeterminate
	}
	switch {
	case as < bs:
		return SizeLess
	case as > bs:
		return SizeGreater
	default:
		return SizeEqual
	}
}

// Alignable reports whether a type can be meaningfully aligned: it is
// an array (regardless of completeness), complete, or void.
func Alignable(t Type) bool {
	u := unwrap(t)
	if (u.Spec.IsArrayKind() && !u.Spec.IsDecayed()) || u.Spec == Void {
		return true
	}
	return !IsIncomplete(u)
}

// RequestedAlignment returns the alignment, in bits, requested by an
// `aligned` attribute anywhere in t's attribute chain, or (0, false)
// if none is present.
func RequestedAlignment(t Type, c Comp) (uint64, bool) {
	attrs := GetAttributes(t)
	return AnnotationAlignmentBits(attrs, c.Target)
}

// Alignof returns a type's required alignment in bytes, consulting
// RequestedAlignment first per §4.4.
func Alignof(t Type, c Comp) (uint64, bool) {
	bits, ok := alignofBits(t, c)
	if !ok {
		return 0, false
	}
	return bits / 8, true
}

func alignofBits(t Type, c Comp) (uint64, bool) {
	u := unwrap(t)
	requested, hasRequested := RequestedAlignment(t, c)

	switch u.Spec {
	case Invalid:
		return 0, false

	case Pointer:
		if c.Target.PointerAlignBitsOverride != 0 {
			return c.Target.PointerAlignBitsOverride, true
		}
		return c.Target.PointerWidthBits, true

	case Bool:
		return c.Target.PrimitiveAlignBits(Bool)

	case Int128, UInt128:
		if !c.Target.HasInt128() {
			return 0, false
		}
		return c.Target.Int128AlignBits(), true

	case BitInt, ComplexBitInt:
		bits := uint64(u.data.(*bitIntData).Bits)
		byteLen := (bits + 7) / 8
		align := nextPow2(byteLen) * 8
		if align > c.Target.MaxIntAlignBits {
			align = c.Target.MaxIntAlignBits
		}
		return align, true

	case NullptrT:
		return c.Target.PointerWidthBits, true

	case Func, VarArgsFunc, OldStyleFunc:
		return c.Target.FuncAlignBits, true

	case Struct, Union:
		rd := u.data.(*recordData)
		if rd.incomplete() || rd.Layout == nil {
			return 0, false
		}
		computed := rd.Layout.FieldAlignmentBits
		if c.Target.IsMSVC() {
			if hasRequested {
				return requested, true
			}
			return computed, true
		}
		if requested > computed {
			return requested, true
		}
		return computed, true

	case Enum:
		ed := u.data.(*enumData)
		if ed.incomplete() && !ed.Fixed {
			return 0, false
		}
		tagAlign, ok := alignofBits(ed.TagTy, c)
		if !ok {
			return 0, false
		}
		if c.Lang.IsGCC() {
			return tagAlign, true // GCC ignores `aligned` on enums
		}
		if hasRequested {
			return requested, true
		}
		return tagAlign, true

	case Vector:
		elem := ElemType(u)
		elemAlign, ok := alignofBits(elem, c)
		if !ok {
			return 0, false
		}
		// The raw size is computed from the element here: BitSizeof of a
		// vector asks for its alignment, so calling it would recurse.
		if elemBytes, ok := Sizeof(elem, c); ok {
			n, _ := ArrayLen(u)
			if sizeBits := elemBytes * 8 * n; sizeBits > elemAlign {
				elemAlign = nextPow2(sizeBits)
			}
		}
		if hasRequested && requested > elemAlign {
			return requested, true
		}
		return elemAlign, true
	}

	if u.Spec.IsComplexInt() || u.Spec.IsComplexFloat() {
		return alignofBits(MakeReal(u), c)
	}

	if u.Spec.IsArrayKind() {
		// Decayed arrays behave like pointers.
		if u.Spec.IsDecayed() {
			if c.Target.PointerAlignBitsOverride != 0 {
				return c.Target.PointerAlignBitsOverride, true
			}
			return c.Target.PointerWidthBits, true
		}
		if !Alignable(u) {
			return 0, false
		}
		return alignofBits(ElemType(u), c)
	}

	if u.Spec == LongDouble || u.Spec == Float80 {
		return c.Target.PrimitiveAlignBits(u.Spec)
	}
	if u.Spec.IsRealFloat() {
		return c.Target.PrimitiveAlignBits(u.Spec)
	}
	if u.Spec.IsRealInt() {
		return c.Target.PrimitiveAlignBits(u.Spec)
	}

	return 0, false
}
