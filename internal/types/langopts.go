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

// Standard identifies the C standard the current translation unit is
// compiled against.
type Standard int

const (
	C89 Standard = iota
	C99
	C11
	C17
	C23
)

// Dialect selects which compiler's quirks the engine emulates where
// behavior is genuinely ambiguous or compiler-specific (duplicate
// specifier tolerance, enum alignment, short-enums, ...).
type Dialect int

const (
	DialectGCC Dialect = iota
	DialectClang
	DialectMSVC
)

// LangOpts bundles the dialect-sensitive options the engine consults.
// Like Target, it is configuration data owned by the driver; the
// engine only reads it.
type LangOpts struct {
	Standard Standard
	Dialect  Dialect

	// ShortEnums mirrors -fshort-enums: pack an enum's tag type down
	// to the smallest integer type that represents all enumerators.
	ShortEnums bool
}

func (o LangOpts) IsGCC() bool   { return o.Dialect == DialectGCC }
func (o LangOpts) IsClang() bool { return o.Dialect == DialectClang }
func (o LangOpts) IsMSVC() bool  { return o.Dialect == DialectMSVC }
