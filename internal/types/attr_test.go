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

func TestWithAttributesAccumulates(t *testing.T) {
	arena := NewArena()
	ty := arena.WithAttributes(Type{Spec: Int}, []Attribute{{Tag: "packed"}})
	ty = arena.WithAttributes(ty, []Attribute{{Tag: "aligned", Args: []int64{4}}})
	attrs := GetAttributes(ty)
	qt.Assert(t, qt.HasLen(attrs, 2))
	qt.Assert(t, qt.Equals(attrs[0].Tag, "packed"))
	qt.Assert(t, qt.Equals(attrs[1].Tag, "aligned"))
}

func TestGetAttributesUnwrapsTypeof(t *testing.T) {
	arena := NewArena()
	attributed := arena.WithAttributes(Type{Spec: Int}, []Attribute{{Tag: "packed"}})
	wrapped := arena.NewTypeofType(attributed, false)
	qt.Assert(t, qt.IsTrue(HasAttribute(wrapped, "packed")))
}

func TestAnnotationAlignmentBitsPicksLargest(t *testing.T) {
	target := x86_64Target()
	attrs := []Attribute{{Tag: "aligned", Args: []int64{4}}, {Tag: "aligned", Args: []int64{16}}}
	bits, ok := AnnotationAlignmentBits(attrs, target)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(bits, uint64(128))) // 16 bytes
}

func TestAnnotationAlignmentBitsNoArgsUsesTargetMax(t *testing.T) {
	target := x86_64Target()
	bits, ok := AnnotationAlignmentBits([]Attribute{{Tag: "aligned"}}, target)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(bits, target.MaxIntAlignBits))
}

func TestAnnotationAlignmentBitsAbsent(t *testing.T) {
	_, ok := AnnotationAlignmentBits([]Attribute{{Tag: "packed"}}, x86_64Target())
	qt.Assert(t, qt.IsFalse(ok))
}

func TestEnumIsPackedReasons(t *testing.T) {
	arena := NewArena()
	en := arena.NewIncompleteEnum(NoName)

	c := Comp{Target: x86_64Target(), Lang: LangOpts{ShortEnums: true}}
	qt.Assert(t, qt.IsTrue(EnumIsPacked(en, c)))

	packedTarget := x86_64Target()
	packedTarget.PacksAllEnums = true
	c = Comp{Target: packedTarget, Lang: LangOpts{}}
	qt.Assert(t, qt.IsTrue(EnumIsPacked(en, c)))

	annotated := arena.WithAttributes(en, []Attribute{{Tag: "packed"}})
	c = Comp{Target: x86_64Target(), Lang: LangOpts{}}
	qt.Assert(t, qt.IsTrue(EnumIsPacked(annotated, c)))

	qt.Assert(t, qt.IsFalse(EnumIsPacked(en, c)))
}
