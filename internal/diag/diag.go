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

// Package diag is the concrete types.Sink the CLI and tests use:
// it collects every diagnostic the type engine raises, formats
// it with a per-Code message template, and renders them the way
// cue/errors renders a cue error list — one line per diagnostic,
// sorted, de-duplicated.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"ctypes.dev/ctypes/internal/types"
)

// Diagnostic is one collected error or warning.
type Diagnostic struct {
	Code    types.Code
	Token   types.Token
	Message string
	Fatal   bool
}

func (d Diagnostic) String() string {
	sev := "error"
	if !d.Fatal {
		sev = "warning"
	}
	if d.Token == types.NoToken {
		return fmt.Sprintf("%s: %s", sev, d.Message)
	}
	return fmt.Sprintf("%s: %s (tok %d)", sev, d.Message, d.Token)
}

// List implements types.Sink by accumulating every diagnostic in
// memory. The zero value is ready to use.
type List struct {
	items []Diagnostic
}

var _ types.Sink = (*List)(nil)

func (l *List) add(code types.Code, tok types.Token, msg string) {
	l.items = append(l.items, Diagnostic{Code: code, Token: tok, Message: msg, Fatal: code.IsFatal()})
}

func (l *List) Err(code types.Code) {
	l.add(code, types.NoToken, messageFor(code))
}

func (l *List) ErrTok(code types.Code, tok types.Token) {
	l.add(code, tok, messageFor(code))
}

func (l *List) ErrStr(code types.Code, tok types.Token, s string) {
	l.add(code, tok, fmt.Sprintf("%s: %s", messageFor(code), s))
}

func (l *List) ErrExtra(code types.Code, tok types.Token, extra any) {
	l.add(code, tok, fmt.Sprintf("%s (%v)", messageFor(code), extra))
}

// Items returns every collected diagnostic, in the order raised.
func (l *List) Items() []Diagnostic { return append([]Diagnostic(nil), l.items...) }

// Len reports how many diagnostics have been collected.
func (l *List) Len() int { return len(l.items) }

// HasFatal reports whether any collected diagnostic was fatal.
func (l *List) HasFatal() bool {
	for _, d := range l.items {
		if d.Fatal {
			return true
		}
	}
	return false
}

// Error implements error, so a *List can be returned directly from a
// function that failed during type building.
func (l *List) Error() string {
	lines := make([]string, len(l.items))
	for i, d := range l.items {
		lines[i] = d.String()
	}
	sort.Strings(lines)
	uniq := lines[:0]
	for _, l := range lines {
		if len(uniq) > 0 && uniq[len(uniq)-1] == l {
			continue
		}
		uniq = append(uniq, l)
	}
	return strings.Join(uniq, "\n")
}

// messageFor renders a human-readable template for code. Exact
// phrasing is deliberately terse, matching the one-line diagnostics a
// C compiler front end emits; a parser embedding this engine is free
// to ignore Message entirely and use Code plus its own localization.
var messageTemplates = map[types.Code]string{
	types.RestrictNonPointer:         "restrict requires a pointer type",
	types.AtomicArray:                "_Atomic cannot qualify an array type",
	types.AtomicFunc:                 "_Atomic cannot qualify a function type",
	types.AtomicIncomplete:           "_Atomic cannot qualify an incomplete type",
	types.QualOnRetType:              "qualifier on function return type has no effect",
	types.QualifierNonOutermostArray: "qualifier on non-outermost array dimension",
	types.ArrayIncompleteElem:        "array element has incomplete type",
	types.ArrayFuncElem:              "array element cannot have function type",
	types.StaticNonOutermostArray:    "'static' only allowed in the outermost array dimension",
	types.FuncCannotReturnArray:      "function cannot return array type",
	types.FuncCannotReturnFunc:       "function cannot return function type",
	types.CannotCombineSpec:         "cannot combine with previous declaration specifier",
	types.SpecFromTypedef:           "specifier combined with typedef name",
	types.DuplicateDeclSpec:         "duplicate declaration specifier",
	types.InvalidTypeof:             "invalid operand to typeof",
	types.MissingTypeSpecifier:      "type specifier missing, defaults to 'int'",
	types.PlainComplex:              "plain '_Complex' defaults to '_Complex double'",
	types.ComplexOnInt:              "'_Complex' applied to an integer type",
	types.SignedBitIntTooSmall:      "signed _BitInt requires a width of at least 2",
	types.UnsignedBitIntTooSmall:    "unsigned _BitInt requires a width of at least 1",
	types.BitIntTooBig:              "_BitInt width exceeds the supported maximum of 128",
	types.TypeNotSupportedOnTarget:  "type is not supported on the current target",
}

func messageFor(code types.Code) string {
	if m, ok := messageTemplates[code]; ok {
		return m
	}
	return code.String()
}
