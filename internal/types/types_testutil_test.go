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

// Shared test fixtures. Kept deliberately small and hand-written rather
// than routed through internal/targetcatalog: that package imports
// types, so pulling it into these tests would build a cycle back into
// the package under test.

func x86_64Target() *Target {
	return &Target{
		Triple:           "x86_64-linux-gnu",
		Arch:             "x86_64",
		OS:               "linux",
		ABI:              "gnu",
		PointerWidthBits: 64,
		CharIsSigned:     true,
		MaxIntAlignBits:  128,
		FuncAlignBits:    8,
		SizeBits: map[Specifier]uint64{
			Bool: 8, Char: 8, SChar: 8, UChar: 8,
			Short: 16, UShort: 16, Int: 32, UInt: 32,
			Long: 64, ULong: 64, LongLong: 64, ULongLong: 64,
			Int128: 128, UInt128: 128,
			Float: 32, Double: 64, LongDouble: 128, Float80: 128,
		},
		AlignBits: map[Specifier]uint64{
			Bool: 8, Char: 8, SChar: 8, UChar: 8,
			Short: 16, UShort: 16, Int: 32, UInt: 32,
			Long: 64, ULong: 64, LongLong: 64, ULongLong: 64,
			Int128: 128, UInt128: 128,
			Float: 32, Double: 64, LongDouble: 128, Float80: 128,
		},
		PrecisionBits: map[Specifier]uint64{
			LongDouble: 80, Float80: 80,
		},
	}
}

func i586Target() *Target {
	t := x86_64Target()
	clone := *t
	clone.Triple = "i586-linux-gnu"
	clone.Arch = "i586"
	clone.PointerWidthBits = 32
	clone.SizeBits = map[Specifier]uint64{}
	clone.AlignBits = map[Specifier]uint64{}
	for k, v := range t.SizeBits {
		clone.SizeBits[k] = v
	}
	for k, v := range t.AlignBits {
		clone.AlignBits[k] = v
	}
	clone.SizeBits[Long] = 32
	clone.AlignBits[Long] = 32
	clone.SizeBits[ULong] = 32
	clone.AlignBits[ULong] = 32
	delete(clone.SizeBits, Int128)
	delete(clone.AlignBits, Int128)
	delete(clone.SizeBits, UInt128)
	delete(clone.AlignBits, UInt128)
	return &clone
}

func msvcTarget() *Target {
	t := x86_64Target()
	clone := *t
	clone.Triple = "x86_64-windows-msvc"
	clone.ABI = "msvc"
	clone.OS = "windows"
	return &clone
}

func gccComp() Comp  { return Comp{Target: x86_64Target(), Lang: LangOpts{Standard: C17, Dialect: DialectGCC}} }
func clangComp() Comp {
	return Comp{Target: x86_64Target(), Lang: LangOpts{Standard: C17, Dialect: DialectClang}}
}
func msvcComp() Comp { return Comp{Target: msvcTarget(), Lang: LangOpts{Standard: C17, Dialect: DialectMSVC}} }
