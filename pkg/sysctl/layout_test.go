// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clockinfoLayout mirrors struct clockinfo from sys/time.h: five C ints.
func clockinfoLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := NewLayout(20,
		Field{Name: "hz", Offset: 0, Type: FieldInt32},
		Field{Name: "tick", Offset: 4, Type: FieldInt32},
		Field{Name: "spare", Offset: 8, Type: FieldInt32},
		Field{Name: "stathz", Offset: 12, Type: FieldInt32},
		Field{Name: "profhz", Offset: 16, Type: FieldInt32},
	)
	require.NoError(t, err)
	return l
}

func TestNewLayoutValidation(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		fields []Field
	}{
		{
			name: "zero size",
			size: 0,
		},
		{
			name:   "unnamed field",
			size:   4,
			fields: []Field{{Offset: 0, Type: FieldInt32}},
		},
		{
			name: "duplicate name",
			size: 8,
			fields: []Field{
				{Name: "a", Offset: 0, Type: FieldInt32},
				{Name: "a", Offset: 4, Type: FieldInt32},
			},
		},
		{
			name:   "field past end",
			size:   4,
			fields: []Field{{Name: "a", Offset: 2, Type: FieldInt32}},
		},
		{
			name:   "negative offset",
			size:   4,
			fields: []Field{{Name: "a", Offset: -1, Type: FieldInt32}},
		},
		{
			name:   "bytes field without size",
			size:   4,
			fields: []Field{{Name: "a", Offset: 0, Type: FieldBytes}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLayout(tt.size, tt.fields...)
			assert.Error(t, err)
		})
	}
}

func TestLayoutExtract(t *testing.T) {
	layout := clockinfoLayout(t)
	assert.Equal(t, 20, layout.Size())

	raw := make([]byte, 20)
	binary.LittleEndian.PutUint32(raw[0:], uint32(int32(1000)))  // hz
	binary.LittleEndian.PutUint32(raw[4:], uint32(int32(1000)))  // tick
	binary.LittleEndian.PutUint32(raw[12:], uint32(int32(127)))  // stathz
	binary.LittleEndian.PutUint32(raw[16:], uint32(int32(8128))) // profhz

	rec, err := layout.Extract(Struct(raw))
	require.NoError(t, err)

	hz, err := rec.Int32("hz")
	require.NoError(t, err)
	assert.Equal(t, int32(1000), hz)

	stathz, err := rec.Int32("stathz")
	require.NoError(t, err)
	assert.Equal(t, int32(127), stathz)

	profhz, err := rec.Int32("profhz")
	require.NoError(t, err)
	assert.Equal(t, int32(8128), profhz)

	// Node-typed values extract the same way: some structs are reported
	// as nodes by the kernel.
	rec, err = layout.Extract(Node(raw))
	require.NoError(t, err)
	tick, err := rec.Int32("tick")
	require.NoError(t, err)
	assert.Equal(t, int32(1000), tick)
}

func TestLayoutExtractSizeMismatch(t *testing.T) {
	layout := clockinfoLayout(t)

	for _, n := range []int{0, 19, 21, 40} {
		_, err := layout.Extract(Struct(make([]byte, n)))
		require.Error(t, err)

		var sizeErr *SizeMismatchError
		require.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, 20, sizeErr.Want)
		assert.Equal(t, n, sizeErr.Got)
	}
}

func TestLayoutExtractWrongVariant(t *testing.T) {
	layout := clockinfoLayout(t)

	for _, v := range []Value{Int(1), String("x"), U64(2), Temperature{}} {
		_, err := layout.Extract(v)
		assert.ErrorIs(t, err, ErrNotStruct)
	}
}

func TestRecordFieldAccess(t *testing.T) {
	l, err := NewLayout(26,
		Field{Name: "i8", Offset: 0, Type: FieldInt8},
		Field{Name: "u8", Offset: 1, Type: FieldUint8},
		Field{Name: "i16", Offset: 2, Type: FieldInt16},
		Field{Name: "u16", Offset: 4, Type: FieldUint16},
		Field{Name: "i32", Offset: 6, Type: FieldInt32},
		Field{Name: "u32", Offset: 10, Type: FieldUint32},
		Field{Name: "i64", Offset: 14, Type: FieldInt64},
		Field{Name: "pad", Offset: 22, Type: FieldBytes, Size: 4},
	)
	require.NoError(t, err)

	raw := make([]byte, 26)
	var (
		i8v  int8  = -5
		i16v int16 = -300
		i32v int32 = -70000
		i64v int64 = -1 << 40
	)
	raw[0] = byte(i8v)
	raw[1] = 200
	binary.LittleEndian.PutUint16(raw[2:], uint16(i16v))
	binary.LittleEndian.PutUint16(raw[4:], 60000)
	binary.LittleEndian.PutUint32(raw[6:], uint32(i32v))
	binary.LittleEndian.PutUint32(raw[10:], 4000000000)
	binary.LittleEndian.PutUint64(raw[14:], uint64(i64v))
	copy(raw[22:], []byte{0xde, 0xad, 0xbe, 0xef})

	rec, err := l.Extract(Struct(raw))
	require.NoError(t, err)

	i8, err := rec.Int8("i8")
	require.NoError(t, err)
	assert.Equal(t, int8(-5), i8)

	u8, err := rec.Uint8("u8")
	require.NoError(t, err)
	assert.Equal(t, uint8(200), u8)

	i16, err := rec.Int16("i16")
	require.NoError(t, err)
	assert.Equal(t, int16(-300), i16)

	u16, err := rec.Uint16("u16")
	require.NoError(t, err)
	assert.Equal(t, uint16(60000), u16)

	i32, err := rec.Int32("i32")
	require.NoError(t, err)
	assert.Equal(t, int32(-70000), i32)

	u32, err := rec.Uint32("u32")
	require.NoError(t, err)
	assert.Equal(t, uint32(4000000000), u32)

	i64, err := rec.Int64("i64")
	require.NoError(t, err)
	assert.Equal(t, int64(-1<<40), i64)

	pad, err := rec.Bytes("pad")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, pad)
}

func TestRecordFieldErrors(t *testing.T) {
	l, err := NewLayout(4, Field{Name: "n", Offset: 0, Type: FieldInt32})
	require.NoError(t, err)

	rec, err := l.Extract(Struct(make([]byte, 4)))
	require.NoError(t, err)

	// Unknown field name.
	_, err = rec.Int32("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no field")

	// Field exists but with a different decode rule.
	_, err = rec.Uint64("n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not uint64")
}
