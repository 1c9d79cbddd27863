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

// This file builds the three derived-type combinators a declarator
// applies on top of a SpecBuilder's finished base type: pointer, array,
// and function. These are not part of the specifier state machine in
// builder.go — C never lets `int *` or `int[4]` combine with another
// atomic specifier — so the parser calls these directly while walking
// the declarator, innermost first.

// MakePointerType wraps elem in a pointer, applying quals to the
// pointer itself (not to elem).
func MakePointerType(arena *Arena, elem Type, quals *QualBuilder, sink Sink) Type {
	ty := arena.NewPointer(elem)
	if quals != nil {
		return quals.Finish(ty, sink)
	}
	return ty
}

// MakeArrayType builds an array of elem with the given kind (Array,
// StaticArray, or IncompleteArray) and length, reporting and repairing
// the combined-type-validity errors of §4.2: an incomplete or function
// element type, static/qualifiers on a non-outermost array dimension.
//
// outermost is true for the declarator's own array dimension and false
// for any dimension nested inside it (`int a[3][4]`'s `[3]` is
// outermost; `[4]` is not) — `static` and top-level qualifiers are only
// meaningful on the outermost dimension.
func MakeArrayType(arena *Arena, kind Specifier, length uint64, elem Type, outermost bool, quals Qualifiers, tok Token, sink Sink) Type {
	if IsFuncLike(unwrap(elem).Spec) {
		sink.ErrTok(ArrayFuncElem, tok)
		return InvalidType()
	}
	if kind != IncompleteArray && IsIncomplete(elem) {
		sink.ErrTok(ArrayIncompleteElem, tok)
		return InvalidType()
	}
	if !outermost {
		if kind == StaticArray {
			sink.ErrTok(StaticNonOutermostArray, tok)
			kind = Array
		}
		if quals != 0 {
			sink.ErrTok(QualifierNonOutermostArray, tok)
			quals = 0
		}
	}
	ty := arena.NewArray(kind, length, elem)
	ty.Quals = quals
	return ty
}

// MakeFuncType builds a function type returning ret, reporting the two
// illegal-return-type cases of §4.2 (a function cannot return an array
// or another function) and stripping any qualifier a parser mistakenly
// attached to the return type itself rather than to the function
// pointer/declaration it belongs on.
func MakeFuncType(arena *Arena, kind Specifier, ret Type, params []Param, tok Token, sink Sink) Type {
	u := unwrap(ret)
	if u.Spec.IsArrayKind() && !u.Spec.IsDecayed() {
		sink.ErrTok(FuncCannotReturnArray, tok)
		return InvalidType()
	}
	if IsFuncLike(u.Spec) {
		sink.ErrTok(FuncCannotReturnFunc, tok)
		return InvalidType()
	}
	if ret.Quals != 0 {
		sink.ErrTok(QualOnRetType, tok)
		ret.Quals = 0
	}
	return arena.NewFunc(kind, ret, params)
}
