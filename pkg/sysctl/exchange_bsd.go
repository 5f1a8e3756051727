// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

//go:build freebsd || darwin

package sysctl

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// The kernel reserves the {0,n} prefix for meta-requests against the MIB
// itself. Reference: FreeBSD kern_sysctl.c.
const (
	metaName2OID = 3
	metaOIDFmt   = 4
	metaOIDDescr = 5
)

// metaBufSize matches BUFSIZ, which sysctl(8) uses for the same replies.
const metaBufSize = 1024

const sizeofInt32 = 4

// name2OID resolves a dotted name by writing it as the payload of a
// {0,3} meta-request. The kernel reports the filled length in bytes; the
// component count is that divided by the width of one C int.
func name2OID(name string) (OID, error) {
	mib := []int32{0, metaName2OID}
	out := make([]int32, CTL_MAXNAME)
	outLen := uintptr(len(out) * sizeofInt32)

	payload := []byte(name)
	err := sysctlExchange(mib, unsafe.Pointer(&out[0]), &outLen,
		unsafe.Pointer(&payload[0]), uintptr(len(payload)))
	if err != nil {
		return nil, fmt.Errorf("sysctl: resolving %q: %w", name, err)
	}
	return OID(out[:outLen/sizeofInt32]), nil
}

// oidInfo issues a {0,4} meta-request. The reply is a 4-byte kind word (type
// tag in the low bits, flags above) followed by the format descriptor string.
func oidInfo(oid OID) (Info, error) {
	qoid := append([]int32{0, metaOIDFmt}, oid...)
	buf := make([]byte, metaBufSize)
	bufLen := uintptr(len(buf))

	err := sysctlExchange(qoid, unsafe.Pointer(&buf[0]), &bufLen, nil, 0)
	if err != nil {
		return Info{}, fmt.Errorf("sysctl: describing %s: %w", oid, err)
	}
	if bufLen < sizeofInt32 {
		return Info{}, fmt.Errorf("sysctl: describe reply for %s is %d bytes, want at least %d",
			oid, bufLen, sizeofInt32)
	}

	kind := binary.LittleEndian.Uint32(buf)
	ctlType, err := ctlTypeFromTag(kind & CTLTYPE)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Type:   ctlType,
		Format: strings.TrimRight(string(buf[sizeofInt32:bufLen]), "\x00"),
		Flags:  kind,
	}, nil
}

// fetchRaw reads the value at oid with the two-phase protocol: a nil
// destination probe to learn the required size, then a read into a buffer of
// exactly that size. The kernel reporting a different length on the second
// call means the value changed size in between; that read is abandoned.
func fetchRaw(oid OID) ([]byte, error) {
	mib := []int32(oid)

	var size uintptr
	if err := sysctlExchange(mib, nil, &size, nil, 0); err != nil {
		return nil, fmt.Errorf("sysctl: probing size of %s: %w", oid, err)
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	readLen := size
	if err := sysctlExchange(mib, unsafe.Pointer(&buf[0]), &readLen, nil, 0); err != nil {
		return nil, fmt.Errorf("sysctl: reading %s: %w", oid, err)
	}
	if readLen != size {
		return nil, fmt.Errorf("sysctl: value of %s changed size during read: probe %d bytes, read %d",
			oid, size, readLen)
	}
	return buf, nil
}

// writeRaw writes serialized bytes to the parameter at oid, with a nil
// destination buffer.
func writeRaw(oid OID, data []byte) error {
	var src unsafe.Pointer
	if len(data) > 0 {
		src = unsafe.Pointer(&data[0])
	}
	if err := sysctlExchange([]int32(oid), nil, nil, src, uintptr(len(data))); err != nil {
		return fmt.Errorf("sysctl: writing %s: %w", oid, err)
	}
	return nil
}

// description issues a {0,5} meta-request for the parameter's help text.
func description(oid OID) (string, error) {
	if !hasDescription {
		return "", ErrUnsupported
	}

	qoid := append([]int32{0, metaOIDDescr}, oid...)
	buf := make([]byte, metaBufSize)
	bufLen := uintptr(len(buf))

	err := sysctlExchange(qoid, unsafe.Pointer(&buf[0]), &bufLen, nil, 0)
	if err != nil {
		return "", fmt.Errorf("sysctl: description of %s: %w", oid, err)
	}

	text := buf[:bufLen]
	if n := len(text); n > 0 && text[n-1] == 0 {
		text = text[:n-1]
	}
	return string(text), nil
}
