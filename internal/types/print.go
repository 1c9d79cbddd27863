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
	"fmt"
	"strings"
)

// This file implements §4.9: rendering a Type as the C declarator
// syntax that would declare a variable of it. Print builds the
// prologue/epilogue pair around a declarator name the way a real
// pretty-printer must — arrays and functions bind tighter than a
// pointer, so `int (*p)[4]` needs parentheses that `int *p` does not.

// Print renders ty as a C declaration of a variable named name (""
// for an abstract declarator, e.g. inside a cast or sizeof). comp may
// be nil; it is only consulted to size a Vector type's
// vector_size(...) attribute, and every other declarator shape prints
// the same with or without it.
func Print(ty Type, name string, interner StringInterner, comp *Comp) string {
	pre, post := printParts(ty, interner, comp)
	var b strings.Builder
	b.WriteString(pre)
	if pre != "" && !strings.HasSuffix(pre, "*") && !strings.HasSuffix(pre, " ") && name != "" {
		b.WriteByte(' ')
	}
	b.WriteString(name)
	b.WriteString(post)
	return strings.TrimSpace(b.String())
}

// printParts returns the prologue (everything printed before the
// declarator name) and epilogue (everything after) for ty.
func printParts(ty Type, interner StringInterner, comp *Comp) (pre, post string) {
	switch ty.Spec {
	case Attributed:
		ad := ty.data.(*attributedData)
		base := ad.Base
		pre, post = printParts(base, interner, comp)
		if v, ok := GetAttribute(ty, "vector_size"); ok && len(v.Args) > 0 {
			post += fmt.Sprintf(" /* vector_size(%d) */", v.Args[0])
			return pre, post
		}
		return pre, post

	case TypeofType, DecayedTypeofType:
		inner := ty.data.(*subTypeData).Elem
		return printParts(inner, interner, comp)

	case TypeofExpr, DecayedTypeofExpr:
		inner := ty.data.(*exprData).Ty
		return printParts(inner, interner, comp)

	case Pointer:
		quals := qualPrefix(ty.Quals)
		elem := ty.data.(*subTypeData).Elem
		epre, epost := printParts(elem, interner, comp)
		star := "*" + quals
		sep := ""
		if epre != "" && !strings.HasSuffix(epre, "*") {
			sep = " "
		}
		if needsParensForPointer(elem) {
			return epre + sep + "(" + star, ")" + epost
		}
		return epre + sep + star, epost

	case Array, StaticArray, IncompleteArray,
		VariableLenArray, UnspecifiedVariableLenArray:
		return printArrayParts(ty, interner, comp)

	case Vector:
		return printVectorParts(ty, interner, comp)

	case DecayedArray, DecayedStaticArray, DecayedIncompleteArray,
		DecayedVariableLenArray, DecayedUnspecifiedVariableLenArray, DecayedVector:
		// A decayed array prints as the pointer it decayed to.
		elem := ElemType(ty)
		return printParts(Type{Spec: Pointer, data: &subTypeData{Elem: elem}}, interner, comp)

	case Func, VarArgsFunc, OldStyleFunc:
		return printFuncParts(ty, interner, comp)

	case Struct:
		return printTagParts("struct", ty, interner)
	case Union:
		return printTagParts("union", ty, interner)
	case Enum:
		return printTagParts("enum", ty, interner)

	case BitInt, ComplexBitInt:
		bd := ty.data.(*bitIntData)
		name := "_BitInt"
		if !bd.Signed {
			name = "unsigned _BitInt"
		}
		prefix := ""
		if ty.Spec == ComplexBitInt {
			prefix = "_Complex "
		}
		return qualPrefix(ty.Quals) + prefix + fmt.Sprintf("%s(%d)", name, bd.Bits), ""

	default:
		if ty.Quals.Has(Atomic) {
			return fmt.Sprintf("_Atomic(%s%s)", cvPrefix(ty.Quals), ty.Spec.String()), ""
		}
		return qualPrefix(ty.Quals) + ty.Spec.String(), ""
	}
}

// cvPrefix renders only const/volatile (used inside _Atomic(...), which
// already supplies its own parens).
func cvPrefix(q Qualifiers) string {
	var s strings.Builder
	if q.Has(Const) {
		s.WriteString("const ")
	}
	if q.Has(Volatile) {
		s.WriteString("volatile ")
	}
	return s.String()
}

func qualPrefix(q Qualifiers) string {
	var s strings.Builder
	if q.Has(Const) {
		s.WriteString("const ")
	}
	if q.Has(Volatile) {
		s.WriteString("volatile ")
	}
	if q.Has(Restrict) {
		s.WriteString("restrict ")
	}
	if q.Has(Atomic) {
		s.WriteString("_Atomic ")
	}
	return s.String()
}

// needsParensForPointer reports whether a pointer to elem needs
// parentheses around the "*name" so it binds to the declarator instead
// of to elem's own array/function syntax, e.g. `int (*p)[4]`.
func needsParensForPointer(elem Type) bool {
	u := elem
	for {
		switch u.Spec {
		case Attributed:
			u = u.data.(*attributedData).Base
			continue
		case TypeofType, DecayedTypeofType:
			u = u.data.(*subTypeData).Elem
			continue
		case TypeofExpr, DecayedTypeofExpr:
			u = u.data.(*exprData).Ty
			continue
		}
		break
	}
	return (u.Spec.IsArrayKind() && !u.Spec.IsDecayed()) || IsFuncLike(u.Spec)
}

func printArrayParts(ty Type, interner StringInterner, comp *Comp) (pre, post string) {
	elem := ElemType(ty)
	epre, epost := printParts(elem, interner, comp)

	var lenStr string
	switch ty.Spec {
	case IncompleteArray:
		lenStr = ""
	case VariableLenArray:
		lenStr = "*" // the bound expression is opaque to the printer
	case UnspecifiedVariableLenArray:
		lenStr = ""
	default:
		n, _ := ArrayLen(ty)
		lenStr = fmt.Sprintf("%d", n)
	}

	staticKw := ""
	if ty.Spec == StaticArray {
		staticKw = "static "
	}
	quals := qualPrefix(ty.Quals)

	suffix := fmt.Sprintf("[%s%s%s]", staticKw, quals, lenStr)
	return epre, epost + suffix
}

// printVectorParts renders a Vector type in its GCC-compatible
// __attribute__((vector_size(N))) form (§4.9), where N is the vector's
// total size in bytes, plus a trailing descriptive comment repeating
// it — comp is consulted to size N; if comp is nil (or the size is
// unknown) N is printed as a ? placeholder rather than guessed.
func printVectorParts(ty Type, interner StringInterner, comp *Comp) (pre, post string) {
	elem := ElemType(ty)
	epre, epost := printParts(elem, interner, comp)

	sizeStr := "?"
	if comp != nil {
		if n, ok := Sizeof(ty, *comp); ok {
			sizeStr = fmt.Sprintf("%d", n)
		}
	}

	prefix := fmt.Sprintf("__attribute__((vector_size(%s))) ", sizeStr)
	comment := fmt.Sprintf(" /* vector_size(%s) */", sizeStr)
	return prefix + epre, epost + comment
}

func printFuncParts(ty Type, interner StringInterner, comp *Comp) (pre, post string) {
	fd := ty.data.(*funcData)
	rpre, rpost := printParts(fd.Return, interner, comp)

	var params []string
	for _, p := range fd.Params {
		pname := ""
		if p.Name != NoName && interner != nil {
			pname = string(interner.Lookup(p.Name))
		}
		params = append(params, Print(p.Ty, pname, interner, comp))
	}

	switch ty.Spec {
	case VarArgsFunc:
		params = append(params, "...")
	case OldStyleFunc:
		// no parameter-type-list was ever given
	default:
		if len(params) == 0 {
			// Empty parameter list is unambiguous only as `(void)`: a
			// bare `()` in C means "unspecified parameters", which is
			// OldStyleFunc's job, not Func's.
			params = []string{"void"}
		}
	}

	paramStr := "(" + strings.Join(params, ", ") + ")"
	return rpre, paramStr + rpost
}

func printTagParts(kw string, ty Type, interner StringInterner) (pre, post string) {
	var name string
	switch ty.Spec {
	case Struct, Union:
		rd := ty.data.(*recordData)
		if rd.Name != NoName && interner != nil {
			name = string(interner.Lookup(rd.Name))
		}
	case Enum:
		ed := ty.data.(*enumData)
		if ed.Name != NoName && interner != nil {
			name = string(interner.Lookup(ed.Name))
		}
	}
	if name == "" {
		name = "<anonymous>"
	}
	return qualPrefix(ty.Quals) + kw + " " + name, ""
}
