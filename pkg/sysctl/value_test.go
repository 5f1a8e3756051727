// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCtlTypes(t *testing.T) {
	tests := []struct {
		value Value
		want  CtlType
	}{
		{Node{}, TypeNode},
		{Int(0), TypeInt},
		{String(""), TypeString},
		{S64(0), TypeS64},
		{Struct{}, TypeStruct},
		{Uint(0), TypeUint},
		{Long(0), TypeLong},
		{Ulong(0), TypeUlong},
		{U64(0), TypeU64},
		{U8(0), TypeU8},
		{U16(0), TypeU16},
		{S8(0), TypeS8},
		{S16(0), TypeS16},
		{S32(0), TypeS32},
		{U32(0), TypeU32},
		{Temperature{}, TypeTemperature},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.CtlType())
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-42", Int(-42).String())
	assert.Equal(t, "42", Uint(42).String())
	assert.Equal(t, "-1099511627776", Long(-1<<40).String())
	assert.Equal(t, "18446744073709551615", Ulong(1<<64-1).String())
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "-8", S8(-8).String())
	assert.Equal(t, "node(3 bytes)", Node{1, 2, 3}.String())
	assert.Equal(t, "struct(2 bytes)", Struct{1, 2}.String())
	assert.Equal(t, "300.00K", Temperature{kelvin: 300}.String())
}
