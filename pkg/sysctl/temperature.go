// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Temperature is the decoded form of an "IK"-formatted sysctl: an integer
// scalar scaled by a power of ten holding a fixed-point Kelvin measurement,
// e.g. dev.cpu.0.temperature on FreeBSD.
type Temperature struct {
	kelvin float64
}

func (t Temperature) CtlType() CtlType { return TypeTemperature }

func (t Temperature) String() string {
	return fmt.Sprintf("%.2fK", t.kelvin)
}

// Kelvin returns the measurement in Kelvin.
func (t Temperature) Kelvin() float64 {
	return t.kelvin
}

// Celsius returns the measurement in degrees Celsius.
func (t Temperature) Celsius() float64 {
	return t.kelvin - 273.15
}

// Fahrenheit returns the measurement in degrees Fahrenheit.
func (t Temperature) Fahrenheit() float64 {
	return 1.8*t.Celsius() + 32.0
}

// temperaturePrecision extracts the power-of-ten scale from an "IK" format
// descriptor. A third character that is an ASCII digit gives the precision;
// anything else means the default of 1 (deciKelvin).
func temperaturePrecision(format string) int {
	if len(format) > 2 {
		if d := format[2]; d >= '0' && d <= '9' {
			return int(d - '0')
		}
	}
	return 1
}

// decodeTemperature reinterprets raw bytes as the parameter's declared
// integer type and scales the magnitude down to Kelvin. Only scalar integer
// declared types are valid carriers; anything else has no decode rule.
func decodeTemperature(info Info, raw []byte) (Value, error) {
	var magnitude float64

	switch info.Type {
	case TypeInt, TypeS32:
		n, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(int32(binary.LittleEndian.Uint32(n)))
	case TypeUint, TypeU32:
		n, err := wantLen(raw, 4, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(binary.LittleEndian.Uint32(n))
	case TypeLong:
		n, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(int64(binary.LittleEndian.Uint64(n)))
	case TypeUlong, TypeU64, TypeS64:
		n, err := wantLen(raw, 8, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(binary.LittleEndian.Uint64(n))
	case TypeU8:
		n, err := wantLen(raw, 1, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(n[0])
	case TypeS8:
		n, err := wantLen(raw, 1, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(int8(n[0]))
	case TypeU16:
		n, err := wantLen(raw, 2, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(binary.LittleEndian.Uint16(n))
	case TypeS16:
		n, err := wantLen(raw, 2, info.Type)
		if err != nil {
			return nil, err
		}
		magnitude = float64(int16(binary.LittleEndian.Uint16(n)))
	default:
		return nil, ErrNoMatchingType
	}

	scale := math.Pow10(temperaturePrecision(info.Format))
	return Temperature{kelvin: magnitude / scale}, nil
}
