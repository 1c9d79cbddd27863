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

func TestCanonicalizeStripsAttributed(t *testing.T) {
	arena := NewArena()
	wrapped := arena.NewAttributed(Type{Spec: Int}, []Attribute{{Tag: "packed"}})
	got := Canonicalize(wrapped, Standard)
	qt.Assert(t, qt.Equals(got.Spec, Int))
}

func TestCanonicalizeMergesTypeofQualifiers(t *testing.T) {
	arena := NewArena()
	inner := Type{Spec: Int, Quals: Const}
	wrapped := arena.NewTypeofType(inner, false)
	wrapped.Quals = Volatile

	got := Canonicalize(wrapped, Standard)
	qt.Assert(t, qt.Equals(got.Spec, Int))
	qt.Assert(t, qt.IsTrue(got.Quals.Has(Const)))
	qt.Assert(t, qt.IsTrue(got.Quals.Has(Volatile)))
}

func TestCanonicalizeStandardDropsQualsOnPointerResult(t *testing.T) {
	arena := NewArena()
	ptr := arena.NewPointer(Type{Spec: Int})
	wrapped := arena.NewTypeofType(ptr, false)
	wrapped.Quals = Const

	got := Canonicalize(wrapped, Standard)
	qt.Assert(t, qt.Equals(got.Spec, Pointer))
	qt.Assert(t, qt.IsFalse(got.Quals.Has(Const)))
}

func TestCanonicalizePreserveQualsKeepsQualsOnArrayResult(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(Array, 4, Type{Spec: Int})
	wrapped := arena.NewTypeofType(arr, false)
	wrapped.Quals = Const

	got := Canonicalize(wrapped, PreserveQuals)
	qt.Assert(t, qt.IsTrue(got.Spec.IsArrayKind()))
	qt.Assert(t, qt.IsTrue(got.Quals.Has(Const)))
}

func TestElemTypePropagatesTypeofQualsOntoArrayElement(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(Array, 4, Type{Spec: Int})
	wrapped := arena.NewTypeofType(arr, false)
	wrapped.Quals = Const

	elem := ElemType(wrapped)
	qt.Assert(t, qt.Equals(elem.Spec, Int))
	qt.Assert(t, qt.IsTrue(elem.Quals.Has(Const)))
}

func TestCanonicalizeDecayedTypeofDecaysInner(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(Array, 4, Type{Spec: Int})
	wrapped := arena.NewTypeofType(arr, true) // decayed typeof

	got := Canonicalize(wrapped, Standard)
	qt.Assert(t, qt.IsTrue(IsDecayed(got)))
}
