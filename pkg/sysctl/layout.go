// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"encoding/binary"
	"fmt"
)

// FieldType is the decode rule for one field of a Layout.
type FieldType int

const (
	FieldInt8 FieldType = iota
	FieldUint8
	FieldInt16
	FieldUint16
	FieldInt32
	FieldUint32
	FieldInt64
	FieldUint64
	// FieldBytes takes Field.Size bytes verbatim.
	FieldBytes
)

func (ft FieldType) String() string {
	switch ft {
	case FieldInt8:
		return "int8"
	case FieldUint8:
		return "uint8"
	case FieldInt16:
		return "int16"
	case FieldUint16:
		return "uint16"
	case FieldInt32:
		return "int32"
	case FieldUint32:
		return "uint32"
	case FieldInt64:
		return "int64"
	case FieldUint64:
		return "uint64"
	case FieldBytes:
		return "bytes"
	}
	return fmt.Sprintf("fieldtype(%d)", int(ft))
}

// Field names one slice of a struct-typed parameter: where it starts, how
// wide it is, and how to decode it. Offsets are relative to the start of the
// raw value.
type Field struct {
	Name   string
	Offset int
	Type   FieldType
	// Size is the byte count for FieldBytes fields and ignored otherwise.
	Size int
}

// width returns the encoded size of the field, or -1 if the type is unknown.
func (f Field) width() int {
	switch f.Type {
	case FieldInt8, FieldUint8:
		return 1
	case FieldInt16, FieldUint16:
		return 2
	case FieldInt32, FieldUint32:
		return 4
	case FieldInt64, FieldUint64:
		return 8
	case FieldBytes:
		return f.Size
	}
	return -1
}

// Layout describes the exact wire layout of a struct-typed parameter as an
// ordered set of fields plus a total size. Building the typed view field by
// field from validated sub-slices replaces the unchecked struct cast this
// would otherwise require, so host struct padding rules never enter into it.
type Layout struct {
	size   int
	fields map[string]Field
}

// NewLayout validates the field descriptors against the total size and
// returns the layout. Every field must fit entirely inside size bytes and
// names must be unique.
func NewLayout(size int, fields ...Field) (*Layout, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sysctl: layout size must be positive, got %d", size)
	}
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("sysctl: layout field at offset %d has no name", f.Offset)
		}
		if _, dup := byName[f.Name]; dup {
			return nil, fmt.Errorf("sysctl: duplicate layout field %q", f.Name)
		}
		w := f.width()
		if w <= 0 {
			return nil, fmt.Errorf("sysctl: layout field %q has invalid type or size", f.Name)
		}
		if f.Offset < 0 || f.Offset+w > size {
			return nil, fmt.Errorf("sysctl: layout field %q [%d,%d) exceeds size %d",
				f.Name, f.Offset, f.Offset+w, size)
		}
		byName[f.Name] = f
	}
	return &Layout{size: size, fields: byName}, nil
}

// Size returns the total byte size the layout requires.
func (l *Layout) Size() int {
	return l.size
}

// Extract reinterprets a fetched value through the layout. The value must be
// the node or struct/opaque variant and its byte length must equal the layout
// size exactly; the record is only constructed after both checks pass. The
// record takes over the value's byte buffer without copying.
func (l *Layout) Extract(v Value) (*Record, error) {
	var raw []byte
	switch tv := v.(type) {
	case Struct:
		raw = tv
	case Node:
		raw = tv
	default:
		return nil, fmt.Errorf("%w (got %s)", ErrNotStruct, v.CtlType())
	}
	if len(raw) != l.size {
		return nil, &SizeMismatchError{Want: l.size, Got: len(raw)}
	}
	return &Record{layout: l, raw: raw}, nil
}

// Record is a typed view over the raw bytes of one extracted value.
type Record struct {
	layout *Layout
	raw    []byte
}

func (r *Record) field(name string, want FieldType) (Field, error) {
	f, ok := r.layout.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("sysctl: layout has no field %q", name)
	}
	if f.Type != want {
		return Field{}, fmt.Errorf("sysctl: field %q is %s, not %s", name, f.Type, want)
	}
	return f, nil
}

// Int8 returns the named FieldInt8 field.
func (r *Record) Int8(name string) (int8, error) {
	f, err := r.field(name, FieldInt8)
	if err != nil {
		return 0, err
	}
	return int8(r.raw[f.Offset]), nil
}

// Uint8 returns the named FieldUint8 field.
func (r *Record) Uint8(name string) (uint8, error) {
	f, err := r.field(name, FieldUint8)
	if err != nil {
		return 0, err
	}
	return r.raw[f.Offset], nil
}

// Int16 returns the named FieldInt16 field.
func (r *Record) Int16(name string) (int16, error) {
	f, err := r.field(name, FieldInt16)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(r.raw[f.Offset:])), nil
}

// Uint16 returns the named FieldUint16 field.
func (r *Record) Uint16(name string) (uint16, error) {
	f, err := r.field(name, FieldUint16)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.raw[f.Offset:]), nil
}

// Int32 returns the named FieldInt32 field.
func (r *Record) Int32(name string) (int32, error) {
	f, err := r.field(name, FieldInt32)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.raw[f.Offset:])), nil
}

// Uint32 returns the named FieldUint32 field.
func (r *Record) Uint32(name string) (uint32, error) {
	f, err := r.field(name, FieldUint32)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.raw[f.Offset:]), nil
}

// Int64 returns the named FieldInt64 field.
func (r *Record) Int64(name string) (int64, error) {
	f, err := r.field(name, FieldInt64)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(r.raw[f.Offset:])), nil
}

// Uint64 returns the named FieldUint64 field.
func (r *Record) Uint64(name string) (uint64, error) {
	f, err := r.field(name, FieldUint64)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.raw[f.Offset:]), nil
}

// Bytes returns the named FieldBytes field as a sub-slice of the record's
// buffer, without copying.
func (r *Record) Bytes(name string) ([]byte, error) {
	f, err := r.field(name, FieldBytes)
	if err != nil {
		return nil, err
	}
	return r.raw[f.Offset : f.Offset+f.Size], nil
}
