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

// Target describes everything the layout engine needs to know about
// the compilation target: primitive sizes and alignments, pointer
// width, and the handful of per-architecture/per-ABI quirks spec.md
// §4.4 enumerates. It is an external collaborator — internal/types
// only declares the shape; internal/targetcatalog supplies concrete,
// data-driven values.
type Target struct {
	Triple string // e.g. "x86_64-linux-gnu", purely for debug output

	Arch string // "x86_64", "i586", "arm", "aarch64", "avr", "s390x", "wasm32", "riscv64", ...
	OS   string // "linux", "ios", "windows", "none", ...
	ABI  string // "gnu", "msvc", "eabi", ...

	PointerWidthBits uint64

	// SizeBits/AlignBits hold the natural size/alignment, in bits, of
	// every primitive specifier this target supports. Specifiers not
	// present in the map are not supported on this target at all
	// (distinct from HasInt128, which is a dedicated, explicitly
	// checked capability bit because its failure mode carries its own
	// diagnostic).
	SizeBits  map[Specifier]uint64
	AlignBits map[Specifier]uint64

	// PrecisionBits overrides BitSizeof for specifiers whose storage
	// size (SizeBits, used for Sizeof) differs from their meaningful
	// precision width — chiefly LongDouble and Float80 on x86, which
	// are stored in a 12- or 16-byte container but carry 80 bits of
	// precision. Specifiers absent from this map report SizeBits for
	// both Sizeof and BitSizeof.
	PrecisionBits map[Specifier]uint64

	CharIsSigned bool

	// MaxIntAlignBits caps the alignment the layout engine will ever
	// report for a _BitInt(N), regardless of N.
	MaxIntAlignBits uint64

	// FuncAlignBits is the alignment, in bits, reported for function
	// types: 32 on ARM/AArch64/SPARC, 16 on RV64, else 8.
	FuncAlignBits uint64

	// Int128AlignBitsOverride, when non-zero, replaces the natural
	// __int128 alignment (s390x-linux-gnu aligns it to 8 instead of 16).
	Int128AlignBitsOverride uint64

	// PointerAlignBitsOverride, when non-zero, replaces PointerWidthBits
	// as the pointer's alignment (AVR aligns pointers to 1 byte).
	PointerAlignBitsOverride uint64

	// IgnoreNonZeroSizedBitfieldTypeAlignment is true on AVR and
	// ARMv7-iOS, where a bitfield's declared type does not widen the
	// enclosing record's alignment.
	IgnoreNonZeroSizedBitfieldTypeAlignment bool

	// AllowInt128OnNarrowTargets is true only for wasm32: __int128
	// otherwise requires a 64-bit pointer width.
	AllowInt128OnNarrowTargets bool

	// PacksAllEnums is true for targets whose ABI packs every enum down
	// to its smallest fitting integer type unconditionally, independent
	// of -fshort-enums. No profile in internal/targetcatalog sets it.
	PacksAllEnums bool
}

// IsMSVC reports whether this target uses the MSVC ABI environment,
// which the layout engine special-cases in several places (§4.4).
func (t *Target) IsMSVC() bool { return t.ABI == "msvc" }

// HasInt128 reports whether __int128/_Complex __int128/unsigned
// __int128 are available on this target: 64-bit targets, plus wasm32
// as a documented exception.
func (t *Target) HasInt128() bool {
	return t.PointerWidthBits >= 64 || t.AllowInt128OnNarrowTargets
}

// PointerAlignBits is the alignment used for pointers and decayed
// arrays.
func (t *Target) PointerAlignBits() uint64 {
	if t.PointerAlignBitsOverride != 0 {
		return t.PointerAlignBitsOverride
	}
	return t.PointerWidthBits
}

// Int128AlignBits is the natural alignment of __int128 on this target.
func (t *Target) Int128AlignBits() uint64 {
	if t.Int128AlignBitsOverride != 0 {
		return t.Int128AlignBitsOverride
	}
	return t.AlignBits[Int128]
}

// PrimitiveSizeBits returns the size, in bits, of a primitive
// specifier, and false if the target does not support it.
func (t *Target) PrimitiveSizeBits(spec Specifier) (uint64, bool) {
	v, ok := t.SizeBits[spec]
	return v, ok
}

// PrimitivePrecisionBits returns the meaningful precision width, in
// bits, of a primitive specifier — equal to PrimitiveSizeBits unless
// PrecisionBits carries an explicit override for it.
func (t *Target) PrimitivePrecisionBits(spec Specifier) (uint64, bool) {
	if v, ok := t.PrecisionBits[spec]; ok {
		return v, true
	}
	return t.PrimitiveSizeBits(spec)
}

// PrimitiveAlignBits returns the natural alignment, in bits, of a
// primitive specifier, and false if the target does not support it.
func (t *Target) PrimitiveAlignBits(spec Specifier) (uint64, bool) {
	v, ok := t.AlignBits[spec]
	return v, ok
}
