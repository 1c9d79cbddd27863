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

import "math/big"

// IntegerPromotion implements the C integer-promotion rule (§4.3):
// bool/char/schar/uchar/short promote to int; ushort promotes to uint
// iff it is exactly as wide as int, else to int; wider integer types
// are unchanged; an enum promotes as its tag type (Int for an
// incomplete enum); complex integers and _BitInt(N) pass through
// unchanged. It is idempotent on an already-promoted type (§8
// invariant 9): applying it twice gives the same result as once,
// because none of int/uint/long/... or complex/_BitInt specifiers
// match any of the promotion cases below.
func IntegerPromotion(t Type, target *Target) Type {
	u := unwrap(t)
	switch u.Spec {
	case Bool, Char, SChar, UChar, Short:
		return Type{Spec: Int}
	case UShort:
		shortBits, _ := target.PrimitiveSizeBits(UShort)
		intBits, _ := target.PrimitiveSizeBits(UInt)
		if shortBits == intBits {
			return Type{Spec: UInt}
		}
		return Type{Spec: Int}
	case Enum:
		return IntegerPromotion(EnumTagType(u), target)
	default:
		return u
	}
}

// CharSignedness reports whether plain `char` is signed on target,
// e.g. false on most ARM/AArch64 targets and true on x86.
func CharSignedness(target *Target) bool { return target.CharIsSigned }

// maxUnsignedBits returns the largest value representable in n bits,
// unsigned, as an arbitrary-precision integer: n can be up to 128 for
// __int128/unsigned __int128 and up to 128 for a _BitInt(128), both of
// which overflow a uint64 (2^128-1 does not fit in 64 bits). This is
// the one place the engine reaches for math/big rather than a
// teacher-supplied arbitrary-precision library: the pack's only
// arbitrary-precision type, cockroachdb/apd, models base-10 decimals
// for exact currency-style arithmetic and has no binary bit-width
// concept, so forcing _BitInt bounds through it would be a worse fit
// than the standard library's purpose-built big.Int (see DESIGN.md).
func maxUnsignedBits(n uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), n), big.NewInt(1))
}

// MinInt and MaxInt return the representable range of an integer
// specifier at a given bit width, honoring signedness. bits must be
// the specifier's actual bit width (from the layout engine); width for
// _BitInt is carried in the type's payload instead of the target.
func MinInt(signed bool, bits uint) *big.Int {
	if !signed || bits == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
}

func MaxInt(signed bool, bits uint) *big.Int {
	if bits == 0 {
		return big.NewInt(0)
	}
	if !signed {
		return maxUnsignedBits(bits)
	}
	return maxUnsignedBits(bits - 1)
}
