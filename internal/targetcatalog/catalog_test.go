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

package targetcatalog

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestGetUnknownTriple(t *testing.T) {
	_, ok := Get("made-up-triple")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestTriplesIncludesEveryProfile(t *testing.T) {
	triples := Triples()
	qt.Assert(t, qt.HasLen(triples, 9))
	for _, want := range []string{
		"aarch64-linux-gnu", "armv7-apple-ios", "avr", "i586-linux-gnu",
		"riscv64-linux-gnu", "s390x-linux-gnu", "wasm32-unknown-unknown",
		"x86_64-linux-gnu", "x86_64-pc-windows-msvc",
	} {
		qt.Assert(t, qt.IsTrue(contains(triples, want)), qt.Commentf("triple %q", want))
	}
}

func contains(haystack []string, want string) bool {
	for _, s := range haystack {
		if s == want {
			return true
		}
	}
	return false
}

// armv7-apple-ios is char-signed per spec.md §8 scenario 6, and ignores
// a bitfield's declared type when widening the enclosing record's
// alignment — both easy to invert by a stray YAML edit since nothing
// else in the tree exercises this profile.
func TestArmv7IOSProfile(t *testing.T) {
	target, ok := Get("armv7-apple-ios")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(target.CharIsSigned))
	qt.Assert(t, qt.IsTrue(target.IgnoreNonZeroSizedBitfieldTypeAlignment))
}

func TestX86_64LinuxGNUProfile(t *testing.T) {
	target, ok := Get("x86_64-linux-gnu")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(target.IsMSVC()))
	qt.Assert(t, qt.Equals(target.PointerWidthBits, uint64(64)))
	qt.Assert(t, qt.IsTrue(target.HasInt128()))
}

func TestWasm32AllowsInt128OnNarrowTarget(t *testing.T) {
	target, ok := Get("wasm32-unknown-unknown")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(target.PointerWidthBits < 64))
	qt.Assert(t, qt.IsTrue(target.HasInt128()))
}
