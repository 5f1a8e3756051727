// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"fmt"
	"strconv"
)

// Value is a decoded sysctl value. Exactly one concrete variant exists per
// CtlType, so a value can never disagree with its discriminant. Extract the
// payload with a type switch or assertion:
//
//	if n, ok := v.(sysctl.Int); ok {
//		fmt.Println(int32(n))
//	}
type Value interface {
	// CtlType returns the wire-level kind this value decodes.
	CtlType() CtlType
	// String renders the value for display.
	String() string
}

// Node holds the raw bytes of a non-leaf tree entry.
type Node []byte

// Int holds a signed 32-bit scalar.
type Int int32

// String holds a text value with the wire-level NUL terminator stripped.
type String string

// S64 holds an s64-typed scalar. The wire decode matches sysctl(8)'s
// behavior of reading the bits unsigned.
type S64 uint64

// Struct holds the undecoded bytes of a struct or opaque leaf.
type Struct []byte

// Uint holds an unsigned 32-bit scalar.
type Uint uint32

// Long holds a signed 64-bit scalar.
type Long int64

// Ulong holds an unsigned 64-bit scalar.
type Ulong uint64

// U64 holds an unsigned 64-bit scalar.
type U64 uint64

// U8 holds an unsigned 8-bit scalar.
type U8 uint8

// U16 holds an unsigned 16-bit scalar.
type U16 uint16

// S8 holds a signed 8-bit scalar.
type S8 int8

// S16 holds a signed 16-bit scalar.
type S16 int16

// S32 holds a signed 32-bit scalar.
type S32 int32

// U32 holds an unsigned 32-bit scalar.
type U32 uint32

func (v Node) CtlType() CtlType   { return TypeNode }
func (v Int) CtlType() CtlType    { return TypeInt }
func (v String) CtlType() CtlType { return TypeString }
func (v S64) CtlType() CtlType    { return TypeS64 }
func (v Struct) CtlType() CtlType { return TypeStruct }
func (v Uint) CtlType() CtlType   { return TypeUint }
func (v Long) CtlType() CtlType   { return TypeLong }
func (v Ulong) CtlType() CtlType  { return TypeUlong }
func (v U64) CtlType() CtlType    { return TypeU64 }
func (v U8) CtlType() CtlType     { return TypeU8 }
func (v U16) CtlType() CtlType    { return TypeU16 }
func (v S8) CtlType() CtlType     { return TypeS8 }
func (v S16) CtlType() CtlType    { return TypeS16 }
func (v S32) CtlType() CtlType    { return TypeS32 }
func (v U32) CtlType() CtlType    { return TypeU32 }

func (v Node) String() string   { return fmt.Sprintf("node(%d bytes)", len(v)) }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v String) String() string { return string(v) }
func (v S64) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v Struct) String() string { return fmt.Sprintf("struct(%d bytes)", len(v)) }
func (v Uint) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Long) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Ulong) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v U64) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v U8) String() string     { return strconv.FormatUint(uint64(v), 10) }
func (v U16) String() string    { return strconv.FormatUint(uint64(v), 10) }
func (v S8) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v S16) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v S32) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v U32) String() string    { return strconv.FormatUint(uint64(v), 10) }
