// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

//go:build darwin

package sysctl

import (
	"syscall"
	"unsafe"
)

// XNU has no {0,5} meta-request; description lookup is not offered here.
const hasDescription = false

// sysctlExchange performs one blocking __sysctl call. oldLen is read for the
// destination capacity and written back with the length the kernel filled.
// The syscall package is used directly because x/sys/unix does not export the
// MIB-addressed sysctl entry point on darwin.
func sysctlExchange(mib []int32, old unsafe.Pointer, oldLen *uintptr, new unsafe.Pointer, newLen uintptr) error {
	_, _, errno := syscall.Syscall6(syscall.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])), uintptr(len(mib)),
		uintptr(old), uintptr(unsafe.Pointer(oldLen)),
		uintptr(new), newLen)
	if errno != 0 {
		return errno
	}
	return nil
}
