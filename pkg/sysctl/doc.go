// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

// Package sysctl provides typed access to the BSD sysctl management
// information base (MIB).
//
// Parameters are addressed either by dotted name ("kern.osrevision") or by
// numeric OID. Reads resolve the name, query the kernel for the parameter's
// declared type and flags, fetch the raw bytes with a two-phase size probe,
// and decode them into a Value variant matching the declared type:
//
//	c := sysctl.New()
//	v, err := c.Value("kern.osrevision")
//	if err != nil {
//		// handle error
//	}
//	if rev, ok := v.(sysctl.Int); ok {
//		fmt.Println("osrevision:", rev)
//	}
//
// Struct-typed parameters can be pulled apart with an explicit Layout
// describing the field offsets instead of an unchecked cast:
//
//	clockinfo, _ := sysctl.NewLayout(20,
//		sysctl.Field{Name: "hz", Offset: 0, Type: sysctl.FieldInt32},
//		sysctl.Field{Name: "tick", Offset: 4, Type: sysctl.FieldInt32},
//		sysctl.Field{Name: "stathz", Offset: 12, Type: sysctl.FieldInt32},
//		sysctl.Field{Name: "profhz", Offset: 16, Type: sysctl.FieldInt32},
//	)
//	rec, err := c.Extract(clockinfo, "kern.clockrate")
//
// All operations are synchronous and stateless: nothing is cached between
// calls, so concurrent use from multiple goroutines needs no coordination
// beyond what the kernel itself provides.
//
// The package is functional on FreeBSD and macOS. On other platforms every
// operation returns ErrUnsupported. Description lookup is FreeBSD only.
package sysctl
