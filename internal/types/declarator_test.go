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

func TestMakePointerTypeAppliesQuals(t *testing.T) {
	arena := NewArena()
	var quals QualBuilder
	quals.Const(NoToken)
	ty := MakePointerType(arena, Type{Spec: Int}, &quals, &collectSink{})
	qt.Assert(t, qt.Equals(ty.Spec, Pointer))
	qt.Assert(t, qt.IsTrue(ty.Quals.Has(Const)))
}

func TestMakeArrayTypeRejectsFuncElem(t *testing.T) {
	arena := NewArena()
	fn := arena.NewFunc(Func, Type{Spec: Void}, nil)
	sink := &collectSink{}
	ty := MakeArrayType(arena, Array, 4, fn, true, 0, NoToken, sink)
	qt.Assert(t, qt.IsFalse(ty.IsValid()))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{ArrayFuncElem}))
}

func TestMakeArrayTypeRejectsIncompleteElem(t *testing.T) {
	arena := NewArena()
	rec := arena.NewIncompleteRecord(Struct, NoName)
	sink := &collectSink{}
	ty := MakeArrayType(arena, Array, 4, rec, true, 0, NoToken, sink)
	qt.Assert(t, qt.IsFalse(ty.IsValid()))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{ArrayIncompleteElem}))
}

func TestMakeArrayTypeAllowsIncompleteElemWhenKindIsIncompleteArray(t *testing.T) {
	arena := NewArena()
	rec := arena.NewIncompleteRecord(Struct, NoName)
	sink := &collectSink{}
	ty := MakeArrayType(arena, IncompleteArray, 0, rec, true, 0, NoToken, sink)
	qt.Assert(t, qt.IsTrue(ty.IsValid()))
	qt.Assert(t, qt.HasLen(sink.codes, 0))
}

func TestMakeArrayTypeDemotesNonOutermostStatic(t *testing.T) {
	arena := NewArena()
	sink := &collectSink{}
	ty := MakeArrayType(arena, StaticArray, 4, Type{Spec: Int}, false, 0, NoToken, sink)
	qt.Assert(t, qt.Equals(ty.Spec, Array))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{StaticNonOutermostArray}))
}

func TestMakeArrayTypeStripsNonOutermostQualifiers(t *testing.T) {
	arena := NewArena()
	sink := &collectSink{}
	ty := MakeArrayType(arena, Array, 4, Type{Spec: Int}, false, Const, NoToken, sink)
	qt.Assert(t, qt.IsFalse(ty.Quals.Has(Const)))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{QualifierNonOutermostArray}))
}

func TestMakeArrayTypeOutermostKeepsStaticAndQuals(t *testing.T) {
	arena := NewArena()
	sink := &collectSink{}
	ty := MakeArrayType(arena, StaticArray, 4, Type{Spec: Int}, true, Const, NoToken, sink)
	qt.Assert(t, qt.Equals(ty.Spec, StaticArray))
	qt.Assert(t, qt.IsTrue(ty.Quals.Has(Const)))
	qt.Assert(t, qt.HasLen(sink.codes, 0))
}

func TestMakeFuncTypeRejectsArrayReturn(t *testing.T) {
	arena := NewArena()
	arr := arena.NewArray(Array, 4, Type{Spec: Int})
	sink := &collectSink{}
	ty := MakeFuncType(arena, Func, arr, nil, NoToken, sink)
	qt.Assert(t, qt.IsFalse(ty.IsValid()))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{FuncCannotReturnArray}))
}

func TestMakeFuncTypeRejectsFuncReturn(t *testing.T) {
	arena := NewArena()
	inner := arena.NewFunc(Func, Type{Spec: Void}, nil)
	sink := &collectSink{}
	ty := MakeFuncType(arena, Func, inner, nil, NoToken, sink)
	qt.Assert(t, qt.IsFalse(ty.IsValid()))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{FuncCannotReturnFunc}))
}

func TestMakeFuncTypeStripsQualOnReturn(t *testing.T) {
	arena := NewArena()
	ret := Type{Spec: Int, Quals: Const}
	sink := &collectSink{}
	ty := MakeFuncType(arena, Func, ret, nil, NoToken, sink)
	qt.Assert(t, qt.IsTrue(ty.IsValid()))
	qt.Assert(t, qt.DeepEquals(sink.codes, []Code{QualOnRetType}))
	qt.Assert(t, qt.IsFalse(ReturnType(ty).Quals.Has(Const)))
}
