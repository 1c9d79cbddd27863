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

// WithAttributes wraps ty in an Attributed node carrying its existing
// attributes (if any) followed by attrs.
func (a *Arena) WithAttributes(ty Type, attrs []Attribute) Type {
	existing := GetAttributes(ty)
	all := make([]Attribute, 0, len(existing)+len(attrs))
	all = append(all, existing...)
	all = append(all, attrs...)
	base := ty
	if ty.Spec == Attributed {
		base = ty.data.(*attributedData).Base
	}
	return a.NewAttributed(base, all)
}

// GetAttributes returns every attribute reachable from t, unwrapping
// typeof wrappers to find the nearest Attributed layer.
func GetAttributes(t Type) []Attribute {
	cur := t
	for {
		switch cur.Spec {
		case Attributed:
			return cur.data.(*attributedData).Attributes
		case TypeofType, DecayedTypeofType:
			cur = cur.data.(*subTypeData).Elem
		case TypeofExpr, DecayedTypeofExpr:
			cur = cur.data.(*exprData).Ty
		default:
			return nil
		}
	}
}

// GetAttribute returns the first attribute with the given tag, and
// whether one was found.
func GetAttribute(t Type, tag string) (Attribute, bool) {
	for _, a := range GetAttributes(t) {
		if a.Tag == tag {
			return a, true
		}
	}
	return Attribute{}, false
}

func HasAttribute(t Type, tag string) bool {
	_, ok := GetAttribute(t, tag)
	return ok
}

// AnnotationAlignmentBits scans attrs for `aligned(N)` and returns the
// largest N found, in bits, or (0, false) if aligned is absent. An
// `aligned` with no argument requests the target's default maximum
// alignment.
func AnnotationAlignmentBits(attrs []Attribute, target *Target) (uint64, bool) {
	found := false
	var best uint64
	for _, a := range attrs {
		if a.Tag != "aligned" {
			continue
		}
		found = true
		var bits uint64
		if len(a.Args) == 0 {
			bits = target.MaxIntAlignBits
		} else {
			bits = uint64(a.Args[0]) * 8
		}
		if bits > best {
			best = bits
		}
	}
	return best, found
}

// EnumIsPacked reports whether an enum's tag type should be packed
// down to the smallest integer type that fits its enumerators: true
// under -fshort-enums, when the target packs all enums unconditionally,
// or when the type carries a `packed` attribute.
func EnumIsPacked(t Type, c Comp) bool {
	if c.Lang.ShortEnums {
		return true
	}
	if c.Target.PacksAllEnums {
		return true
	}
	if HasAttribute(t, "packed") {
		return true
	}
	return false
}
