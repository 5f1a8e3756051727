// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned on platforms without the sysctl MIB
	// interface, and by description lookup on platforms that lack it.
	ErrUnsupported = errors.New("sysctl: not supported on this platform")

	// ErrNoMatchingType is returned when a parameter's declared type has
	// no decode rule, such as a reserved tag or a temperature with a
	// non-integer declared type.
	ErrNoMatchingType = errors.New("sysctl: no matching type for value")

	// ErrNotStruct is returned by layout extraction when the parameter's
	// value is not the node or struct/opaque variant.
	ErrNotStruct = errors.New("sysctl: value is not a struct, opaque, or node")
)

// UnknownTypeError reports a type tag outside the range known to this
// package, which usually means the kernel is newer than the constant tables
// compiled in here.
type UnknownTypeError struct {
	Tag uint32
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("sysctl: unknown type tag %d", e.Tag)
}

// TypeMismatchError reports a write whose supplied value variant does not
// match the parameter's declared type.
type TypeMismatchError struct {
	Declared CtlType
	Given    CtlType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("sysctl: type mismatch: value is %s, parameter is declared %s", e.Given, e.Declared)
}

// SizeMismatchError reports a raw value whose byte length does not match the
// size the caller's layout requires.
type SizeMismatchError struct {
	Want int
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("sysctl: size mismatch: layout is %d bytes, value is %d bytes", e.Want, e.Got)
}
