// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"runtime"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRejectsEmptyInputs(t *testing.T) {
	c := New()

	_, err := c.Name2OID("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")

	_, err = c.Value("")
	require.Error(t, err)

	_, err = c.Info(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty oid")

	_, err = c.DescriptionOID(OID{})
	require.Error(t, err)
}

func TestClientWithLogger(t *testing.T) {
	// Must construct without panicking and carry the logger through an
	// exchange attempt.
	c := New(WithLogger(testr.New(t)))
	_, _ = c.Value("kern.ostype")
}

func TestClientUnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "freebsd" || runtime.GOOS == "darwin" {
		t.Skip("platform has a sysctl MIB")
	}

	c := New()

	_, err := c.Value("kern.ostype")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = c.Name2OID("kern.ostype")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = c.Info(OID{1, 1})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = c.SetValue("kern.ostype", Int(1))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = c.Description("kern.ostype")
	assert.ErrorIs(t, err, ErrUnsupported)
}
