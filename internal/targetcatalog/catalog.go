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

// Package targetcatalog is the data-driven home of every target ABI
// profile the engine ships with. Each profile is a YAML file embedded
// at build time and converted into a types.Target; internal/types
// itself stays free of any knowledge of concrete architectures.
package targetcatalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"ctypes.dev/ctypes/internal/types"
)

//go:embed profiles/*.yaml
var profilesFS embed.FS

// primitiveSpec is one entry of a profile's primitives map.
type primitiveSpec struct {
	Size      uint64 `yaml:"size"`
	Align     uint64 `yaml:"align"`
	Precision uint64 `yaml:"precision"` // 0 means "same as size"
}

// profile mirrors one YAML file's shape exactly; rawToTarget converts
// it to the engine's types.Target.
type profile struct {
	Triple string `yaml:"triple"`
	Arch   string `yaml:"arch"`
	OS     string `yaml:"os"`
	ABI    string `yaml:"abi"`

	PointerWidthBits uint64 `yaml:"pointer_width_bits"`
	CharIsSigned     bool   `yaml:"char_is_signed"`
	MaxIntAlignBits  uint64 `yaml:"max_int_align_bits"`
	FuncAlignBits    uint64 `yaml:"func_align_bits"`

	Int128AlignBitsOverride  uint64 `yaml:"int128_align_bits_override"`
	PointerAlignBitsOverride uint64 `yaml:"pointer_align_bits_override"`

	IgnoreNonZeroSizedBitfieldTypeAlignment bool `yaml:"ignore_nonzero_bitfield_type_alignment"`
	AllowInt128OnNarrowTargets              bool `yaml:"allow_int128_narrow"`
	PacksAllEnums                           bool `yaml:"packs_all_enums"`

	Primitives map[string]primitiveSpec `yaml:"primitives"`
}

// specifierNames maps a profile's primitive keys to engine specifiers.
// Keeping this table here (rather than in internal/types) is what lets
// the catalog add a new primitive key without internal/types knowing
// the catalog exists.
var specifierNames = map[string]types.Specifier{
	"bool": types.Bool,

	"char": types.Char, "schar": types.SChar, "uchar": types.UChar,
	"short": types.Short, "ushort": types.UShort,
	"int": types.Int, "uint": types.UInt,
	"long": types.Long, "ulong": types.ULong,
	"longlong": types.LongLong, "ulonglong": types.ULongLong,
	"int128": types.Int128, "uint128": types.UInt128,

	"fp16": types.Fp16, "float": types.Float, "double": types.Double,
	"longdouble": types.LongDouble, "float80": types.Float80, "float128": types.Float128,
}

func (p *profile) toTarget() (*types.Target, error) {
	t := &types.Target{
		Triple:                   p.Triple,
		Arch:                     p.Arch,
		OS:                       p.OS,
		ABI:                      p.ABI,
		PointerWidthBits:         p.PointerWidthBits,
		CharIsSigned:             p.CharIsSigned,
		MaxIntAlignBits:          p.MaxIntAlignBits,
		FuncAlignBits:            p.FuncAlignBits,
		Int128AlignBitsOverride:  p.Int128AlignBitsOverride,
		PointerAlignBitsOverride: p.PointerAlignBitsOverride,
		IgnoreNonZeroSizedBitfieldTypeAlignment: p.IgnoreNonZeroSizedBitfieldTypeAlignment,
		AllowInt128OnNarrowTargets:              p.AllowInt128OnNarrowTargets,
		PacksAllEnums:                           p.PacksAllEnums,
		SizeBits:                                map[types.Specifier]uint64{},
		AlignBits:                               map[types.Specifier]uint64{},
		PrecisionBits:                           map[types.Specifier]uint64{},
	}
	for key, spec := range p.Primitives {
		sid, ok := specifierNames[key]
		if !ok {
			return nil, fmt.Errorf("targetcatalog: %s: unknown primitive key %q", p.Triple, key)
		}
		t.SizeBits[sid] = spec.Size
		t.AlignBits[sid] = spec.Align
		if spec.Precision != 0 {
			t.PrecisionBits[sid] = spec.Precision
		}
	}
	return t, nil
}

// Load parses every embedded profile. It panics on a malformed profile:
// those are a build-time asset, never user input, so a parse failure is
// a programming error in the catalog itself.
func Load() map[string]*types.Target {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		panic(fmt.Errorf("targetcatalog: %w", err))
	}
	out := make(map[string]*types.Target, len(entries))
	for _, e := range entries {
		data, err := profilesFS.ReadFile("profiles/" + e.Name())
		if err != nil {
			panic(fmt.Errorf("targetcatalog: %w", err))
		}
		var p profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			panic(fmt.Errorf("targetcatalog: %s: %w", e.Name(), err))
		}
		t, err := p.toTarget()
		if err != nil {
			panic(err)
		}
		out[p.Triple] = t
	}
	return out
}

var catalog = Load()

// Get returns the target profile named by triple, and whether it was
// found.
func Get(triple string) (*types.Target, bool) {
	t, ok := catalog[triple]
	return t, ok
}

// Triples returns every known triple, sorted.
func Triples() []string {
	names := make([]string, 0, len(catalog))
	for k := range catalog {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
