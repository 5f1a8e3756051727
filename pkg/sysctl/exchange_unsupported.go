// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

//go:build !freebsd && !darwin

package sysctl

// The MIB-addressed sysctl interface only exists on the BSDs. Every exchange
// on other platforms reports ErrUnsupported; decoding and layout extraction
// stay available for bytes obtained elsewhere.

func name2OID(name string) (OID, error) {
	return nil, ErrUnsupported
}

func oidInfo(oid OID) (Info, error) {
	return Info{}, ErrUnsupported
}

func fetchRaw(oid OID) ([]byte, error) {
	return nil, ErrUnsupported
}

func writeRaw(oid OID, data []byte) error {
	return ErrUnsupported
}

func description(oid OID) (string, error) {
	return "", ErrUnsupported
}
