// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

func wantLen(raw []byte, n int, t CtlType) ([]byte, error) {
	if len(raw) != n {
		return nil, fmt.Errorf("sysctl: %s value is %d bytes, want %d", t, len(raw), n)
	}
	return raw, nil
}

// decodeValue turns the raw bytes of a fetched parameter into the Value
// variant matching its declared type. An "IK" format descriptor overrides the
// declared type: the kernel publishes temperatures as plain integers and the
// format string is the only marker.
func decodeValue(info Info, raw []byte) (Value, error) {
	if info.isTemperature() {
		return decodeTemperature(info, raw)
	}

	switch info.Type {
	case TypeNode:
		return Node(raw), nil
	case TypeStruct:
		return Struct(raw), nil
	case TypeString:
		s := raw
		if n := len(s); n > 0 && s[n-1] == 0 {
			s = s[:n-1]
		}
		if !utf8.Valid(s) {
			return nil, fmt.Errorf("sysctl: string value is not valid UTF-8")
		}
		return String(s), nil
	case TypeInt:
		b, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		return Int(int32(binary.LittleEndian.Uint32(b))), nil
	case TypeS32:
		b, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		return S32(int32(binary.LittleEndian.Uint32(b))), nil
	case TypeUint:
		b, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		return Uint(binary.LittleEndian.Uint32(b)), nil
	case TypeU32:
		b, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		return U32(binary.LittleEndian.Uint32(b)), nil
	case TypeLong:
		b, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		return Long(int64(binary.LittleEndian.Uint64(b))), nil
	case TypeUlong:
		b, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		return Ulong(binary.LittleEndian.Uint64(b)), nil
	case TypeU64:
		b, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		return U64(binary.LittleEndian.Uint64(b)), nil
	case TypeS64:
		b, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		return S64(binary.LittleEndian.Uint64(b)), nil
	case TypeU8:
		b, err := wantLen(raw, 1, info.Type)
		if err != nil {
			return nil, err
		}
		return U8(b[0]), nil
	case TypeS8:
		b, err := wantLen(raw, 1, info.Type)
		if err != nil {
			return nil, err
		}
		return S8(int8(b[0])), nil
	case TypeU16:
		b, err := wantLen(raw, 2, info.Type)
		if err != nil {
			return nil, err
		}
		return U16(binary.LittleEndian.Uint16(b)), nil
	case TypeS16:
		b, err := wantLen(raw, 2, info.Type)
		if err != nil {
			return nil, err
		}
		return S16(int16(binary.LittleEndian.Uint16(b))), nil
	default:
		return nil, ErrNoMatchingType
	}
}

// encodeValue serializes a value to the byte layout the kernel expects for a
// write. Node and Struct have no serialization rule and are rejected: writing
// an opaque blob the kernel's layout is unknown for is never safe.
func encodeValue(v Value) ([]byte, error) {
	switch tv := v.(type) {
	case Int:
		return binary.LittleEndian.AppendUint32(nil, uint32(int32(tv))), nil
	case S32:
		return binary.LittleEndian.AppendUint32(nil, uint32(int32(tv))), nil
	case Uint:
		return binary.LittleEndian.AppendUint32(nil, uint32(tv)), nil
	case U32:
		return binary.LittleEndian.AppendUint32(nil, uint32(tv)), nil
	case Long:
		return binary.LittleEndian.AppendUint64(nil, uint64(int64(tv))), nil
	case Ulong:
		return binary.LittleEndian.AppendUint64(nil, uint64(tv)), nil
	case U64:
		return binary.LittleEndian.AppendUint64(nil, uint64(tv)), nil
	case S64:
		return binary.LittleEndian.AppendUint64(nil, uint64(tv)), nil
	case U8:
		return []byte{byte(tv)}, nil
	case S8:
		return []byte{byte(tv)}, nil
	case U16:
		return binary.LittleEndian.AppendUint16(nil, uint16(tv)), nil
	case S16:
		return binary.LittleEndian.AppendUint16(nil, uint16(int16(tv))), nil
	case String:
		// Wire strings carry a single trailing NUL.
		return append([]byte(tv), 0), nil
	default:
		return nil, fmt.Errorf("sysctl: cannot serialize %s value for writing", v.CtlType())
	}
}
