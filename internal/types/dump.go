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

import "github.com/kr/pretty"

// dumpView is a flattened, acyclic snapshot of a Type suitable for
// kr/pretty to walk: the real Type graph can share payloads (a
// typedef'd struct referenced from a dozen declarations) and pretty
// has no cycle detection of its own, so Dump copies out just the
// fields relevant to a human skimming a diagnostic dump rather than
// handing pretty the live arena-owned pointers.
type dumpView struct {
	Spec  string
	Quals []string
	Elem  *dumpView `pretty:",omitempty"`
	Len   *uint64   `pretty:",omitempty"`
	Name  string    `pretty:",omitempty"`
}

func qualNames(q Qualifiers) []string {
	var names []string
	for _, pair := range []struct {
		bit  Qualifiers
		name string
	}{
		{Const, "const"}, {Volatile, "volatile"}, {Restrict, "restrict"}, {Atomic, "_Atomic"},
	} {
		if q.Has(pair.bit) {
			names = append(names, pair.name)
		}
	}
	return names
}

func toDumpView(t Type, interner StringInterner, depth int) *dumpView {
	if depth > 32 {
		return &dumpView{Spec: "..."}
	}
	v := &dumpView{Spec: t.Spec.String(), Quals: qualNames(t.Quals)}
	switch {
	case t.Spec == Pointer:
		elem := toDumpView(t.data.(*subTypeData).Elem, interner, depth+1)
		v.Elem = elem
	case t.Spec.IsArrayKind():
		elem := toDumpView(ElemType(t), interner, depth+1)
		v.Elem = elem
		if n, ok := ArrayLen(t); ok {
			v.Len = &n
		}
	case t.Spec == Struct || t.Spec == Union:
		rd := t.data.(*recordData)
		if rd.Name != NoName && interner != nil {
			v.Name = string(interner.Lookup(rd.Name))
		}
	case t.Spec == Enum:
		ed := t.data.(*enumData)
		if ed.Name != NoName && interner != nil {
			v.Name = string(interner.Lookup(ed.Name))
		}
	}
	return v
}

// Dump renders a Type as a multi-line, field-labeled tree for
// diagnostics — the engine's equivalent of a compiler's -ast-dump,
// consumed by cmd/ctypec's `dump` subcommand.
func Dump(t Type, interner StringInterner) string {
	return pretty.Sprint(toDumpView(t, interner, 0))
}
