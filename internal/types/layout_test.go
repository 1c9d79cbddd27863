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

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSizeofPrimitives(t *testing.T) {
	c := gccComp()
	cases := []struct {
		spec Specifier
		want uint64
	}{
		{Int, 4}, {UInt, 4}, {Long, 8}, {Short, 2}, {Char, 1}, {Double, 8},
	}
	for _, tc := range cases {
		n, ok := Sizeof(Type{Spec: tc.spec}, c)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(n, tc.want))
	}
}

func TestSizeofLongVariesByTarget(t *testing.T) {
	n, ok := Sizeof(Type{Spec: Long}, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(8)))

	n, ok = Sizeof(Type{Spec: Long}, Comp{Target: i586Target(), Lang: LangOpts{Standard: C17}})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(4)))
}

func TestSizeofPointer(t *testing.T) {
	arena := NewArena()
	ptr := arena.NewPointer(Type{Spec: Int})
	n, ok := Sizeof(ptr, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(8)))
}

func TestSizeofVoidIsUnknown(t *testing.T) {
	_, ok := Sizeof(Type{Spec: Void}, gccComp())
	qt.Assert(t, qt.IsFalse(ok))
}

func TestAlignofAndSizeofArray(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(Array, 4, Type{Spec: Int})
	n, ok := Sizeof(arr, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(16)))

	a, ok := Alignof(arr, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(4)))
}

func TestSizeofIncompleteArrayIsUnknown(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(IncompleteArray, 0, Type{Spec: Int})
	_, ok := Sizeof(arr, gccComp())
	qt.Assert(t, qt.IsFalse(ok))
}

func TestMSVCIncompleteArraySizesToZero(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(IncompleteArray, 0, Type{Spec: Int})
	n, ok := Sizeof(arr, msvcComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(0)))
}

func TestMSVCBoolIsOneByte(t *testing.T) {
	n, ok := BitSizeof(Type{Spec: Bool}, msvcComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(8)))
}

func TestGCCBoolIsOneBit(t *testing.T) {
	n, ok := BitSizeof(Type{Spec: Bool}, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(1)))
}

func TestBitIntSizeAndAlign(t *testing.T) {
	arena := NewArena()
	ty := arena.NewBitInt(7, true, false)
	n, ok := Sizeof(ty, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(1)))

	a, ok := Alignof(ty, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(1)))
}

func TestBitIntAlignCappedByMaxIntAlignBits(t *testing.T) {
	target := x86_64Target()
	target.MaxIntAlignBits = 32 // artificially cap
	arena := NewArena()
	ty := arena.NewBitInt(128, true, false)
	a, ok := Alignof(ty, Comp{Target: target, Lang: LangOpts{}})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(4))) // 32 bits == 4 bytes
}

func TestComplexBitIntSizeIsDoubled(t *testing.T) {
	arena := NewArena()
	real := arena.NewBitInt(32, true, false)
	complexTy := MakeComplex(real)
	qt.Assert(t, qt.Equals(complexTy.Spec, ComplexBitInt))
	n, ok := Sizeof(complexTy, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, uint64(8)))
}

func TestInt128NotSupportedOnNarrowTarget(t *testing.T) {
	_, ok := Sizeof(Type{Spec: Int128}, Comp{Target: i586Target(), Lang: LangOpts{}})
	qt.Assert(t, qt.IsFalse(ok))
}

func TestLongDoublePrecisionDiffersFromSize(t *testing.T) {
	c := gccComp()
	sz, ok := Sizeof(Type{Spec: LongDouble}, c)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(sz, uint64(16)))

	bits, ok := BitSizeof(Type{Spec: LongDouble}, c)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(bits, uint64(80)))
}

func TestAlignofFuncType(t *testing.T) {
	arena := NewArena()
	fn := arena.NewFunc(Func, Type{Spec: Void}, nil)
	a, ok := Alignof(fn, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(1)))
}

func TestSizeCompare(t *testing.T) {
	c := gccComp()
	qt.Assert(t, qt.Equals(SizeCompare(Type{Spec: Short}, Type{Spec: Int}, c), SizeLess))
	qt.Assert(t, qt.Equals(SizeCompare(Type{Spec: Long}, Type{Spec: Int}, c), SizeGreater))
	qt.Assert(t, qt.Equals(SizeCompare(Type{Spec: Int}, Type{Spec: UInt}, c), SizeEqual))
	qt.Assert(t, qt.Equals(SizeCompare(Type{Spec: Void}, Type{Spec: Int}, c), SizeIndeterminate))
}

func TestAlignableRejectsIncompleteNonArray(t *testing.T) {
	arena := NewArena()
	rec := arena.NewIncompleteRecord(Struct, NoName)
	qt.Assert(t, qt.IsFalse(Alignable(rec)))
	qt.Assert(t, qt.IsTrue(Alignable(Type{Spec: Void})))
}

func TestStructAlignmentAndAlignedAttribute(t *testing.T) {
	arena := NewArena()
	rec := arena.NewIncompleteRecord(Struct, NoName)
	arena.CompleteRecord(rec, []RecordField{}, &TypeLayout{SizeBits: 32, FieldAlignmentBits: 32})

	a, ok := Alignof(rec, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(4)))

	annotated := arena.WithAttributes(rec, []Attribute{{Tag: "aligned", Args: []int64{16}}})
	a, ok = Alignof(annotated, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(16)))
}

func TestEnumAlignmentIgnoresAlignedUnderGCC(t *testing.T) {
	arena := NewArena()
	en := arena.NewIncompleteEnum(NoName)
	arena.CompleteEnum(en, []EnumField{{Name: NoName, Value: 0}}, Type{Spec: Int}, false)
	annotated := arena.WithAttributes(en, []Attribute{{Tag: "aligned", Args: []int64{16}}})

	a, ok := Alignof(annotated, gccComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(4))) // GCC ignores aligned() on enums, falls back to tag type

	a, ok = Alignof(annotated, clangComp())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(a, uint64(16)))
}
