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

// This file contains the engine's error encodings. The engine never
// formats a diagnostic message itself; it only picks a Code and hands
// it, together with whatever context the Code implies, to a Sink. The
// parser's diagnostics package owns rendering and source-location
// bookkeeping.

// Code identifies the kind of diagnostic the engine raised. Most codes
// are non-fatal: the engine reports, repairs best-effort, and keeps
// going. A handful (marked below) are fatal for the current
// declaration: the bit-int codes make SpecBuilder.Finish return an
// ErrParseFailed, and ArrayIncompleteElem makes MakeArrayType return
// InvalidType() with no error value.
type Code int8

const (
	// Qualifier misuse.
	RestrictNonPointer Code = iota
	AtomicArray
	AtomicFunc
	AtomicIncomplete
	QualOnRetType
	QualifierNonOutermostArray

	// Combined-type validity.
	ArrayIncompleteElem // fatal
	ArrayFuncElem
	StaticNonOutermostArray
	FuncCannotReturnArray
	FuncCannotReturnFunc

	// Specifier builder.
	CannotCombineSpec
	SpecFromTypedef
	DuplicateDeclSpec // Clang-only warning; elsewhere folded into CannotCombineSpec
	InvalidTypeof
	MissingTypeSpecifier
	PlainComplex
	ComplexOnInt

	// Bit-int bounds (all fatal).
	SignedBitIntTooSmall
	UnsignedBitIntTooSmall
	BitIntTooBig

	// Target capability.
	TypeNotSupportedOnTarget
)

// IsFatal reports whether code is fatal for the current declaration,
// i.e. the declaration is abandoned rather than repaired: with an
// ErrParseFailed from SpecBuilder.Finish for the bit-int codes, and
// with InvalidType() from MakeArrayType for ArrayIncompleteElem.
func (c Code) IsFatal() bool {
	switch c {
	case ArrayIncompleteElem, SignedBitIntTooSmall, UnsignedBitIntTooSmall, BitIntTooBig:
		return true
	}
	return false
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "unknown-diagnostic"
}

var codeNames = map[Code]string{
	RestrictNonPointer:         "restrict_non_pointer",
	AtomicArray:                "atomic_array",
	AtomicFunc:                 "atomic_func",
	AtomicIncomplete:           "atomic_incomplete",
	QualOnRetType:              "qual_on_ret_type",
	QualifierNonOutermostArray: "qualifier_non_outermost_array",
	ArrayIncompleteElem:        "array_incomplete_elem",
	ArrayFuncElem:              "array_func_elem",
	StaticNonOutermostArray:    "static_non_outermost_array",
	FuncCannotReturnArray:      "func_cannot_return_array",
	FuncCannotReturnFunc:       "func_cannot_return_func",
	CannotCombineSpec:          "cannot_combine_spec",
	SpecFromTypedef:            "spec_from_typedef",
	DuplicateDeclSpec:          "duplicate_decl_spec",
	InvalidTypeof:              "invalid_typeof",
	MissingTypeSpecifier:       "missing_type_specifier",
	PlainComplex:               "plain_complex",
	ComplexOnInt:               "complex_on_int",
	SignedBitIntTooSmall:       "signed_bit_int_too_small",
	UnsignedBitIntTooSmall:     "unsigned_bit_int_too_small",
	BitIntTooBig:               "bit_int_too_big",
	TypeNotSupportedOnTarget:   "type_not_supported_on_target",
}

// Sink is the diagnostics collaborator: the parser's error-reporting
// surface, consumed but never implemented by the engine itself.
// internal/diag provides a concrete implementation.
type Sink interface {
	Err(code Code)
	ErrStr(code Code, tok Token, s string)
	ErrTok(code Code, tok Token)
	ErrExtra(code Code, tok Token, extra any)
}

// ErrParseFailed is returned by operations that hit a fatal diagnostic
// (see Code.IsFatal) and must abandon the current declaration. It
// carries no message: the Sink has already recorded one.
type ErrParseFailed struct{ Code Code }

func (e *ErrParseFailed) Error() string { return "parsing failed: " + e.Code.String() }
