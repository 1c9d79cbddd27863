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

// The dialect- and target-sensitive quirks the layout engine honors are
// each implemented at their point of use (Target.IsMSVC in layout.go's
// record/array sizing, LangOpts.IsGCC in alignofBits' enum case,
// Target.PacksAllEnums/LangOpts.ShortEnums in EnumIsPacked,
// SpecBuilder's duplicate-specifier check for DialectClang). The
// exception is QuirkAVRBitfieldNoWiden: nothing outside DialectQuirks
// reads Target.IgnoreNonZeroSizedBitfieldTypeAlignment. This
// file is the index a reader (or a future quirk) starts from rather
// than a separate code path: DialectQuirks walks Comp and reports which
// named quirks are active, for diagnostic dumps and tests that want to
// assert "exactly these quirks fired" without re-deriving each one from
// Target/LangOpts fields by hand.

// Quirk names one specific documented deviation from the "plain GCC on
// a 64-bit Linux target" baseline the rest of the engine assumes.
type Quirk string

const (
	QuirkMSVCBoolIsByte          Quirk = "msvc_bool_is_byte"
	QuirkMSVCNoArraySizeAlignUp  Quirk = "msvc_array_no_align_up"
	QuirkMSVCRequestedAlignAlone Quirk = "msvc_requested_align_alone"
	QuirkGCCIgnoresEnumAligned   Quirk = "gcc_ignores_aligned_on_enum"
	QuirkShortEnums              Quirk = "short_enums"
	QuirkTargetPacksAllEnums     Quirk = "target_packs_all_enums"
	QuirkAVRBitfieldNoWiden      Quirk = "avr_bitfield_type_no_widen"
	QuirkInt128OnNarrowTarget    Quirk = "int128_on_narrow_target"
	QuirkInt128AlignOverride     Quirk = "int128_align_override"
	QuirkPointerAlignOverride    Quirk = "pointer_align_override"
	QuirkClangToleratesDuplicate Quirk = "clang_tolerates_duplicate_decl_spec"
)

// DialectQuirks reports which named quirks apply under c, for dumps and
// tests; it does not affect engine behavior (each quirk's actual
// implementation lives at its point of use, except
// QuirkAVRBitfieldNoWiden, which no code in this package acts on).
func DialectQuirks(c Comp) []Quirk {
	var qs []Quirk
	if c.Target.IsMSVC() {
		qs = append(qs, QuirkMSVCBoolIsByte, QuirkMSVCNoArraySizeAlignUp, QuirkMSVCRequestedAlignAlone)
	}
	if c.Lang.IsGCC() {
		qs = append(qs, QuirkGCCIgnoresEnumAligned)
	}
	if c.Lang.IsClang() {
		qs = append(qs, QuirkClangToleratesDuplicate)
	}
	if c.Lang.ShortEnums {
		qs = append(qs, QuirkShortEnums)
	}
	if c.Target.PacksAllEnums {
		qs = append(qs, QuirkTargetPacksAllEnums)
	}
	if c.Target.IgnoreNonZeroSizedBitfieldTypeAlignment {
		qs = append(qs, QuirkAVRBitfieldNoWiden)
	}
	if c.Target.AllowInt128OnNarrowTargets {
		qs = append(qs, QuirkInt128OnNarrowTarget)
	}
	if c.Target.Int128AlignBitsOverride != 0 {
		qs = append(qs, QuirkInt128AlignOverride)
	}
	if c.Target.PointerAlignBitsOverride != 0 {
		qs = append(qs, QuirkPointerAlignOverride)
	}
	return qs
}
