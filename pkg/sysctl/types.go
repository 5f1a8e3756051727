// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"fmt"
	"strconv"
	"strings"
)

// MIB constants mirrored from sys/sysctl.h.
const (
	// CTL_MAXNAME is the maximum number of components in an OID.
	CTL_MAXNAME = 24

	// CTLTYPE masks the type tag out of a kind word.
	CTLTYPE = 0xf

	CTLTYPE_NODE   = 1
	CTLTYPE_INT    = 2
	CTLTYPE_STRING = 3
	CTLTYPE_S64    = 4
	CTLTYPE_OPAQUE = 5
	CTLTYPE_STRUCT = 5
	CTLTYPE_UINT   = 6
	CTLTYPE_LONG   = 7
	CTLTYPE_ULONG  = 8
	CTLTYPE_U64    = 9
	CTLTYPE_U8     = 10
	CTLTYPE_U16    = 11
	CTLTYPE_S8     = 12
	CTLTYPE_S16    = 13
	CTLTYPE_S32    = 14
	CTLTYPE_U32    = 15

	CTLFLAG_RD      = 0x80000000
	CTLFLAG_WR      = 0x40000000
	CTLFLAG_RW      = CTLFLAG_RD | CTLFLAG_WR
	CTLFLAG_ANYBODY = 0x10000000
	CTLFLAG_SECURE  = 0x08000000
	CTLFLAG_PRISON  = 0x04000000
	CTLFLAG_DYN     = 0x02000000
	CTLFLAG_SKIP    = 0x01000000
	CTLFLAG_TUN     = 0x00080000
	CTLFLAG_RDTUN   = CTLFLAG_RD | CTLFLAG_TUN
	CTLFLAG_RWTUN   = CTLFLAG_RW | CTLFLAG_TUN
	CTLFLAG_MPSAFE  = 0x00040000
	CTLFLAG_VNET    = 0x00020000
	CTLFLAG_DYING   = 0x00010000
	CTLFLAG_CAPRD   = 0x00008000
	CTLFLAG_CAPWR   = 0x00004000
	CTLFLAG_STATS   = 0x00002000
	CTLFLAG_NOFETCH = 0x00001000
	CTLFLAG_CAPRW   = CTLFLAG_CAPRD | CTLFLAG_CAPWR
	CTLFLAG_SECURE1 = 0x08000000
	CTLFLAG_SECURE2 = 0x08100000
	CTLFLAG_SECURE3 = 0x08200000

	CTLMASK_SECURE  = 0x00F00000
	CTLSHIFT_SECURE = 20
)

// CtlType identifies the wire-level kind of a sysctl parameter.
type CtlType uint32

const (
	TypeNode   CtlType = CTLTYPE_NODE
	TypeInt    CtlType = CTLTYPE_INT
	TypeString CtlType = CTLTYPE_STRING
	TypeS64    CtlType = CTLTYPE_S64
	TypeStruct CtlType = CTLTYPE_STRUCT
	TypeUint   CtlType = CTLTYPE_UINT
	TypeLong   CtlType = CTLTYPE_LONG
	TypeUlong  CtlType = CTLTYPE_ULONG
	TypeU64    CtlType = CTLTYPE_U64
	TypeU8     CtlType = CTLTYPE_U8
	TypeU16    CtlType = CTLTYPE_U16
	TypeS8     CtlType = CTLTYPE_S8
	TypeS16    CtlType = CTLTYPE_S16
	TypeS32    CtlType = CTLTYPE_S32
	TypeU32    CtlType = CTLTYPE_U32

	// TypeTemperature is not a kernel type tag. It is derived when a
	// parameter's format descriptor carries the "IK" sentinel, which marks
	// an integer scalar holding a fixed-point Kelvin measurement.
	TypeTemperature CtlType = 16
)

var ctlTypeNames = map[CtlType]string{
	TypeNode:        "node",
	TypeInt:         "int",
	TypeString:      "string",
	TypeS64:         "s64",
	TypeStruct:      "struct",
	TypeUint:        "uint",
	TypeLong:        "long",
	TypeUlong:       "ulong",
	TypeU64:         "u64",
	TypeU8:          "u8",
	TypeU16:         "u16",
	TypeS8:          "s8",
	TypeS16:         "s16",
	TypeS32:         "s32",
	TypeU32:         "u32",
	TypeTemperature: "temperature",
}

func (t CtlType) String() string {
	if name, ok := ctlTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ctltype(%d)", uint32(t))
}

// ctlTypeFromTag converts a numeric type tag from a kind word into a CtlType.
// Tags outside the range published by the kernel headers are rejected rather
// than wrapped, so version skew between this package and the running kernel
// surfaces as an error instead of a misdecoded value.
func ctlTypeFromTag(tag uint32) (CtlType, error) {
	if tag < CTLTYPE_NODE || tag > CTLTYPE_U32 {
		return 0, &UnknownTypeError{Tag: tag}
	}
	return CtlType(tag), nil
}

// OID is the numeric address of a node in the sysctl tree.
type OID []int32

// String renders the OID in the dotted numeric form used by sysctl(8).
func (o OID) String() string {
	parts := make([]string, len(o))
	for i, n := range o {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(parts, ".")
}

// Info describes a parameter's declared type, format descriptor, and flags.
// It is fetched fresh for every operation; nothing is cached across calls.
type Info struct {
	Type CtlType
	// Format is the display hint published by the kernel, e.g. "I" for an
	// int or "IK" for a temperature in deciKelvin.
	Format string
	// Flags is the full kind word, including the type tag in the low bits.
	Flags uint32
}

// Readable reports whether the parameter can be read.
func (i Info) Readable() bool {
	return i.Flags&CTLFLAG_RD != 0
}

// Writable reports whether the parameter accepts writes.
func (i Info) Writable() bool {
	return i.Flags&CTLFLAG_WR != 0
}

// Tunable reports whether the parameter is a boot-time tunable.
func (i Info) Tunable() bool {
	return i.Flags&CTLFLAG_TUN != 0
}

// SecureLevel returns the securelevel at which the parameter becomes
// read-only, or 0 if it is not securelevel-protected.
func (i Info) SecureLevel() int {
	return int((i.Flags & CTLMASK_SECURE) >> CTLSHIFT_SECURE)
}

// isTemperature reports whether the format descriptor carries the "IK"
// sentinel. Temperature sysctls are declared as plain integer types at the
// kernel level; the format string is the only marker.
func (i Info) isTemperature() bool {
	return strings.HasPrefix(i.Format, "IK")
}
