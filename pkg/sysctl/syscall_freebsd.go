// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

//go:build freebsd

package sysctl

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// FreeBSD publishes descriptions through the {0,5} meta-request.
const hasDescription = true

// sysctlExchange performs one blocking __sysctl call. oldLen is read for the
// destination capacity and written back with the length the kernel filled.
func sysctlExchange(mib []int32, old unsafe.Pointer, oldLen *uintptr, new unsafe.Pointer, newLen uintptr) error {
	_, _, errno := unix.Syscall6(unix.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])), uintptr(len(mib)),
		uintptr(old), uintptr(unsafe.Pointer(oldLen)),
		uintptr(new), newLen)
	if errno != 0 {
		return errno
	}
	return nil
}
