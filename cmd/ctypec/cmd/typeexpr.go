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

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"ctypes.dev/ctypes/internal/diag"
	"ctypes.dev/ctypes/internal/types"
)

// parseTypeExpr builds a types.Type from a small, C-like declaration
// specifier expression: a run of atomic-specifier keywords (the ones
// types.SpecBuilder.Combine knows about, plus "_BitInt(N)"), followed
// by any number of trailing "*" (pointer) or "[N]"/"[]" (array)
// declarator tokens, left to right, e.g.:
//
//	unsigned long long
//	const int *
//	char[4]
//	int * [3]
//
// This is not a C parser: no typedefs, no structs, no qualifiers in
// the middle of a declarator. It exists to drive the engine end to end
// from the command line, not to front a real compiler.
func parseTypeExpr(arena *types.Arena, target *types.Target, lang types.LangOpts, expr string, sink *diag.List) (types.Type, error) {
	toks := tokenizeTypeExpr(expr)
	if len(toks) == 0 {
		return types.InvalidType(), fmt.Errorf("empty type expression")
	}

	sb := types.NewSpecBuilder(arena, sink)
	i := 0
	for ; i < len(toks); i++ {
		tok := toks[i]
		if tok == "*" || tok == "[" {
			break
		}
		if tok == "const" {
			sb.Quals.Const(types.NoToken)
			continue
		}
		if tok == "volatile" {
			sb.Quals.Volatile(types.NoToken)
			continue
		}
		if tok == "_BitInt" {
			if i+2 >= len(toks) || toks[i+1] != "(" {
				return types.InvalidType(), fmt.Errorf("expected '(' after _BitInt")
			}
			width, err := strconv.Atoi(toks[i+2])
			if err != nil {
				return types.InvalidType(), fmt.Errorf("invalid _BitInt width: %w", err)
			}
			sb.CombineBitInt(width, types.NoToken)
			i += 3 // skip "(" N ")"
			continue
		}
		kw, ok := keywordFor(tok)
		if !ok {
			return types.InvalidType(), fmt.Errorf("unknown type keyword %q", tok)
		}
		sb.Combine(kw, types.NoToken, lang.Dialect)
	}

	ty, err := sb.Finish(target, lang)
	if err != nil {
		return types.InvalidType(), err
	}

	for i < len(toks) {
		switch toks[i] {
		case "*":
			ty = types.MakePointerType(arena, ty, nil, sink)
			i++
		case "[":
			j := i + 1
			length := uint64(0)
			kind := types.IncompleteArray
			if j < len(toks) && toks[j] != "]" {
				n, err := strconv.ParseUint(toks[j], 10, 64)
				if err != nil {
					return types.InvalidType(), fmt.Errorf("invalid array length: %w", err)
				}
				length = n
				kind = types.Array
				j++
			}
			if j >= len(toks) || toks[j] != "]" {
				return types.InvalidType(), fmt.Errorf("expected ']'")
			}
			ty = types.MakeArrayType(arena, kind, length, ty, true, 0, types.NoToken, sink)
			i = j + 1
		default:
			return types.InvalidType(), fmt.Errorf("unexpected token %q", toks[i])
		}
	}
	return ty, nil
}

var keywordTable = map[string]types.Keyword{
	"void": types.KwVoid, "_Bool": types.KwBool, "bool": types.KwBool,
	"char": types.KwChar, "signed": types.KwSigned, "unsigned": types.KwUnsigned,
	"short": types.KwShort, "long": types.KwLong, "int": types.KwInt,
	"float": types.KwFloat, "double": types.KwDouble, "_Complex": types.KwComplex,
	"_Float16": types.KwFp16, "__float80": types.KwFloat80, "__float128": types.KwFloat128,
	"__int128": types.KwInt128,
}

func keywordFor(tok string) (types.Keyword, bool) {
	kw, ok := keywordTable[tok]
	return kw, ok
}

// tokenizeTypeExpr splits expr on whitespace, while additionally
// treating *, [, ], (, and ) as their own one-character tokens even
// when not surrounded by spaces (so "int*" and "_BitInt(7)" both
// tokenize the way a real lexer would).
func tokenizeTypeExpr(expr string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range expr {
		switch r {
		case ' ', '\t', '\n':
			flush()
		case '*', '[', ']', '(', ')':
			flush()
			toks = append(toks, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
