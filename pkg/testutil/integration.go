// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

// Package testutil provides utilities for testing, with a focus on integration test helpers.
package testutil

import (
	"os"
	"runtime"
	"testing"

	"github.com/antimetal/sysctl/pkg/sysctl"
)

// RequireSysctlPlatform skips the test unless the host has the MIB-addressed
// sysctl interface.
func RequireSysctlPlatform(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "freebsd" && runtime.GOOS != "darwin" {
		t.Skipf("Test requires the sysctl MIB interface, not available on %s", runtime.GOOS)
	}
}

// RequireFreeBSD skips the test if not running on FreeBSD.
func RequireFreeBSD(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "freebsd" {
		t.Skip("Test requires FreeBSD")
	}
}

// RequireRoot checks if the test is running as root.
// Sysctl writes generally require root privileges.
func RequireRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() != 0 {
		t.Skip("Test requires root privileges")
	}
}

// RequireSysctl resolves a parameter name, skipping the test if the host does
// not publish it.
func RequireSysctl(t *testing.T, name string) sysctl.OID {
	t.Helper()
	RequireSysctlPlatform(t)

	oid, err := sysctl.New().Name2OID(name)
	if err != nil {
		t.Skipf("Test requires sysctl %q: %v", name, err)
	}
	return oid
}

// RequireWritableSysctl resolves a parameter name and skips the test unless
// the parameter accepts writes.
func RequireWritableSysctl(t *testing.T, name string) sysctl.OID {
	t.Helper()
	oid := RequireSysctl(t, name)

	info, err := sysctl.New().Info(oid)
	if err != nil {
		t.Skipf("Failed to fetch metadata for %q: %v", name, err)
	}
	if !info.Writable() {
		t.Skipf("Test requires writable sysctl, %q is read-only", name)
	}
	return oid
}
