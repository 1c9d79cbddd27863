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

import "github.com/google/uuid"

// Arena owns every heap payload a Type value references. There is one
// Arena per translation unit; it is released wholesale when the unit's
// AST is torn down, never piecemeal (§5). Arena itself does not
// allocate memory in any special way — new payloads are ordinary Go
// allocations — but routing every allocation through it keeps the
// ownership story explicit. Each arena carries a session id (Session);
// Dump does not print it.
type Arena struct {
	Session uuid.UUID
}

// NewArena creates an arena tagged with a fresh session id.
func NewArena() *Arena {
	return &Arena{Session: uuid.New()}
}

func (a *Arena) NewPointer(elem Type) Type {
	return Type{Spec: Pointer, data: &subTypeData{Elem: elem}}
}

func (a *Arena) NewTypeofType(inner Type, decayed bool) Type {
	spec := TypeofType
	if decayed {
		spec = DecayedTypeofType
	}
	return Type{Spec: spec, data: &subTypeData{Elem: inner}}
}

func (a *Arena) NewTypeofExpr(node ExprNode, ty Type, decayed bool) Type {
	spec := TypeofExpr
	if decayed {
		spec = DecayedTypeofExpr
	}
	return Type{Spec: spec, data: &exprData{Node: node, Ty: ty}}
}

func (a *Arena) NewUnspecifiedVLA(elem Type, decayed bool) Type {
	spec := UnspecifiedVariableLenArray
	if decayed {
		spec = DecayedUnspecifiedVariableLenArray
	}
	return Type{Spec: spec, data: &subTypeData{Elem: elem}}
}

func (a *Arena) NewVariableLenArray(node ExprNode, elem Type, decayed bool) Type {
	spec := VariableLenArray
	if decayed {
		spec = DecayedVariableLenArray
	}
	return Type{Spec: spec, data: &exprData{Node: node, Ty: elem}}
}

// NewArray builds any of Array/StaticArray/IncompleteArray (or their
// decayed forms) or a Vector; kind must be one of those seven specifiers.
func (a *Arena) NewArray(kind Specifier, length uint64, elem Type) Type {
	return Type{Spec: kind, data: &arrayData{Len: length, Elem: elem}}
}

func (a *Arena) NewFunc(kind Specifier, ret Type, params []Param) Type {
	return Type{Spec: kind, data: &funcData{Return: ret, Params: params}}
}

// NewIncompleteRecord creates a struct/union payload with no known
// fields yet; CompleteRecord mutates it in place exactly once.
func (a *Arena) NewIncompleteRecord(kind Specifier, name StringID) Type {
	return Type{Spec: kind, data: &recordData{
		Kind: kind,
		Name: name,
		// Fields stays nil: that is the incomplete state.
	}}
}

// CompleteRecord fills in a previously-incomplete record's fields and
// layout. Calling it twice on the same payload is a programmer error:
// the parser holds the sole reference until completion (§5).
func (a *Arena) CompleteRecord(ty Type, fields []RecordField, layout *TypeLayout) {
	rd := ty.data.(*recordData)
	if !rd.incomplete() {
		panic("types: record already completed")
	}
	if fields == nil {
		fields = []RecordField{}
	}
	rd.Fields = fields
	rd.Layout = layout
}

func (a *Arena) NewIncompleteEnum(name StringID) Type {
	return Type{Spec: Enum, data: &enumData{
		Name: name,
		// Fields stays nil: that is the incomplete state.
	}}
}

func (a *Arena) CompleteEnum(ty Type, fields []EnumField, tagTy Type, fixed bool) {
	ed := ty.data.(*enumData)
	if !ed.incomplete() {
		panic("types: enum already completed")
	}
	if fields == nil {
		fields = []EnumField{}
	}
	ed.Fields = fields
	ed.TagTy = tagTy
	ed.Fixed = fixed
}

func (a *Arena) NewAttributed(base Type, attrs []Attribute) Type {
	return Type{Spec: Attributed, data: &attributedData{Base: base, Attributes: attrs}}
}

func (a *Arena) NewBitInt(bits uint8, signed, complex bool) Type {
	spec := BitInt
	if complex {
		spec = ComplexBitInt
	}
	return Type{Spec: spec, data: &bitIntData{Bits: bits, Signed: signed}}
}
