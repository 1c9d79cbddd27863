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

// Package types models the C type system: every shape a C declaration
// can name, the qualifiers that decorate it, its ABI layout for a given
// target, and the builder that assembles one from a declaration
// specifier stream.
package types

// Specifier identifies the shape of a Type. The ordering within this
// block is load-bearing: the six array specifiers and the two typeof
// wrapper specifiers are each immediately followed by their decayed
// form (decayed == original+1, see IsDecayed and DecayArray), and the
// real integer and real floating blocks are immediately followed by
// their complex counterparts at a fixed offset (see MakeComplex).
type Specifier int

const (
	Invalid Specifier = iota
	Void
	Bool
	NullptrT

	// Real integers. Exactly 13 members; MakeComplex relies on that count
	// to find the matching complex_* tag at a fixed +13 offset.
	Char
	SChar
	UChar
	Short
	UShort
	Int
	UInt
	Long
	ULong
	LongLong
	ULongLong
	Int128
	UInt128

	// Complex integers, same order as their real counterparts above.
	ComplexChar
	ComplexSChar
	ComplexUChar
	ComplexShort
	ComplexUShort
	ComplexInt
	ComplexUInt
	ComplexLong
	ComplexULong
	ComplexLongLong
	ComplexULongLong
	ComplexInt128
	ComplexUInt128

	// Bit-precise integers. Width and signedness live in the payload;
	// the real/complex pair here is not a fixed-offset pair like the
	// ones above, so MakeReal/MakeComplex special-case it.
	BitInt
	ComplexBitInt

	// Real floating types. Exactly 6 members; see MakeComplex.
	Fp16
	Float
	Double
	LongDouble
	Float80
	Float128

	// Complex floating types, same order as their real counterparts.
	ComplexFp16
	ComplexFloat
	ComplexDouble
	ComplexLongDouble
	ComplexFloat80
	ComplexFloat128

	// Derived types. Each array-like kind is immediately followed by its
	// decayed form.
	Pointer

	Array
	DecayedArray
	StaticArray
	DecayedStaticArray
	IncompleteArray
	DecayedIncompleteArray
	VariableLenArray
	DecayedVariableLenArray
	UnspecifiedVariableLenArray
	DecayedUnspecifiedVariableLenArray
	Vector
	DecayedVector

	Func
	VarArgsFunc
	OldStyleFunc

	Struct
	Union
	Enum

	TypeofType
	DecayedTypeofType
	TypeofExpr
	DecayedTypeofExpr

	Attributed

	// SpecialVaStart types the hidden argument of __builtin_va_start.
	SpecialVaStart

	numSpecifiers
)

const (
	firstRealInt     = Char
	lastRealInt      = UInt128
	firstComplexInt  = ComplexChar
	lastComplexInt   = ComplexUInt128
	intBlockLen      = int(lastRealInt-firstRealInt) + 1
	firstRealFloat   = Fp16
	lastRealFloat    = Float128
	firstComplexFlt  = ComplexFp16
	lastComplexFlt   = ComplexFloat128
	floatBlockLen    = int(lastRealFloat-firstRealFloat) + 1
	firstArrayKind   = Array
	lastArrayKind    = DecayedVector
	firstTypeofKind  = TypeofType
	lastTypeofKind   = DecayedTypeofExpr
)

func init() {
	if intBlockLen != 13 {
		panic("types: real integer block must have exactly 13 members")
	}
	if floatBlockLen != 6 {
		panic("types: real float block must have exactly 6 members")
	}
}

// String returns a human-readable, stable name for the specifier; used
// by the printer and by diagnostic dumps.
func (s Specifier) String() string {
	if n, ok := specifierNames[s]; ok {
		return n
	}
	return "invalid-specifier"
}

var specifierNames = map[Specifier]string{
	Invalid: "invalid", Void: "void", Bool: "_Bool", NullptrT: "nullptr_t",

	Char: "char", SChar: "signed char", UChar: "unsigned char",
	Short: "short", UShort: "unsigned short", Int: "int", UInt: "unsigned int",
	Long: "long", ULong: "unsigned long", LongLong: "long long", ULongLong: "unsigned long long",
	Int128: "__int128", UInt128: "unsigned __int128",

	ComplexChar: "_Complex char", ComplexSChar: "_Complex signed char", ComplexUChar: "_Complex unsigned char",
	ComplexShort: "_Complex short", ComplexUShort: "_Complex unsigned short",
	ComplexInt: "_Complex int", ComplexUInt: "_Complex unsigned int",
	ComplexLong: "_Complex long", ComplexULong: "_Complex unsigned long",
	ComplexLongLong: "_Complex long long", ComplexULongLong: "_Complex unsigned long long",
	ComplexInt128: "_Complex __int128", ComplexUInt128: "_Complex unsigned __int128",

	BitInt: "_BitInt", ComplexBitInt: "_Complex _BitInt",

	Fp16: "_Float16", Float: "float", Double: "double", LongDouble: "long double",
	Float80: "__float80", Float128: "__float128",

	ComplexFp16: "_Complex _Float16", ComplexFloat: "_Complex float", ComplexDouble: "_Complex double",
	ComplexLongDouble: "_Complex long double", ComplexFloat80: "_Complex __float80", ComplexFloat128: "_Complex __float128",

	Pointer: "pointer",

	Array: "array", DecayedArray: "decayed array",
	StaticArray: "static array", DecayedStaticArray: "decayed static array",
	IncompleteArray: "incomplete array", DecayedIncompleteArray: "decayed incomplete array",
	VariableLenArray: "variable length array", DecayedVariableLenArray: "decayed variable length array",
	UnspecifiedVariableLenArray: "unspecified variable length array", DecayedUnspecifiedVariableLenArray: "decayed unspecified variable length array",
	Vector: "vector", DecayedVector: "decayed vector",

	Func: "func", VarArgsFunc: "var args func", OldStyleFunc: "old style func",

	Struct: "struct", Union: "union", Enum: "enum",

	TypeofType: "typeof type", DecayedTypeofType: "decayed typeof type",
	TypeofExpr: "typeof expr", DecayedTypeofExpr: "decayed typeof expr",

	Attributed: "attributed",

	SpecialVaStart: "special va start",
}

// IsRealInt reports whether s is one of the thirteen plain (non-complex,
// non-bit-precise) integer specifiers.
func (s Specifier) IsRealInt() bool { return s >= firstRealInt && s <= lastRealInt }

// IsComplexInt reports whether s is a _Complex companion of a plain integer.
func (s Specifier) IsComplexInt() bool { return s >= firstComplexInt && s <= lastComplexInt }

// IsRealFloat reports whether s is one of the six plain floating specifiers.
func (s Specifier) IsRealFloat() bool { return s >= firstRealFloat && s <= lastRealFloat }

// IsComplexFloat reports whether s is a _Complex companion of a plain float.
func (s Specifier) IsComplexFloat() bool { return s >= firstComplexFlt && s <= lastComplexFlt }

// IsArrayKind reports whether s is one of the six array specifiers,
// in either their original or decayed form.
func (s Specifier) IsArrayKind() bool { return s >= firstArrayKind && s <= lastArrayKind }

// IsTypeofKind reports whether s is one of the typeof wrapper specifiers,
// in either their original or decayed form.
func (s Specifier) IsTypeofKind() bool { return s >= firstTypeofKind && s <= lastTypeofKind }

// IsDecayed reports whether s is the decayed form of an array or typeof
// specifier. Per the decayed=original+1 convention, this is true for the
// second half of each (original, decayed) pair.
func (s Specifier) IsDecayed() bool {
	if s.IsArrayKind() {
		return (int(s-firstArrayKind))%2 == 1
	}
	if s.IsTypeofKind() {
		return (int(s-firstTypeofKind))%2 == 1
	}
	return false
}

// Decay returns the decayed form of an array-like specifier. It panics
// if s is not a (non-decayed) array or typeof specifier, matching the
// pre-assertion documented for DecayArray.
func (s Specifier) Decay() Specifier {
	if s.IsDecayed() {
		panic("types: Decay called on an already-decayed specifier")
	}
	if !s.IsArrayKind() && !s.IsTypeofKind() {
		panic("types: Decay called on a non-array, non-typeof specifier")
	}
	return s + 1
}

// Undecay reverses Decay.
func (s Specifier) Undecay() Specifier {
	if !s.IsDecayed() {
		panic("types: Undecay called on a non-decayed specifier")
	}
	return s - 1
}
