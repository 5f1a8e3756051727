// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl

import (
	"errors"

	"github.com/go-logr/logr"
)

// Client performs sysctl exchanges. It holds no state besides a logger:
// every operation resolves names and fetches metadata fresh, so a single
// Client is safe for concurrent use.
type Client struct {
	logger logr.Logger
}

// Option is a function for configuring a Client.
type Option func(*Client)

// WithLogger sets the logger used for exchange tracing at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a Client. Without options it logs nowhere.
func New(opts ...Option) *Client {
	c := &Client{
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name2OID resolves a dotted parameter name to its numeric OID.
func (c *Client) Name2OID(name string) (OID, error) {
	if name == "" {
		return nil, errors.New("sysctl: empty name")
	}
	oid, err := name2OID(name)
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info("resolved name", "name", name, "oid", oid.String())
	return oid, nil
}

// Info returns the declared type, format descriptor, and flags of the
// parameter at oid.
func (c *Client) Info(oid OID) (Info, error) {
	if len(oid) == 0 {
		return Info{}, errors.New("sysctl: empty oid")
	}
	return oidInfo(oid)
}

// Value reads and decodes the parameter with the given dotted name.
func (c *Client) Value(name string) (Value, error) {
	oid, err := c.Name2OID(name)
	if err != nil {
		return nil, err
	}
	return c.ValueOID(oid)
}

// ValueOID reads and decodes the parameter at oid. The raw bytes are fetched
// with a two-phase exchange (size probe, then read into an exact-size buffer)
// and decoded according to the declared type, or as a Temperature when the
// format descriptor carries the "IK" sentinel.
func (c *Client) ValueOID(oid OID) (Value, error) {
	info, err := c.Info(oid)
	if err != nil {
		return nil, err
	}
	raw, err := fetchRaw(oid)
	if err != nil {
		return nil, err
	}
	c.logger.V(1).Info("fetched value",
		"oid", oid.String(), "type", info.Type.String(), "bytes", len(raw))
	return decodeValue(info, raw)
}

// SetValue writes v to the named parameter and returns the value read back
// afterwards. The supplied variant must match the parameter's declared type;
// a mismatch fails before anything is written. The returned value comes from
// a full independent re-read, never from echoing the input.
func (c *Client) SetValue(name string, v Value) (Value, error) {
	oid, err := c.Name2OID(name)
	if err != nil {
		return nil, err
	}
	info, err := c.Info(oid)
	if err != nil {
		return nil, err
	}
	if info.Type != v.CtlType() {
		return nil, &TypeMismatchError{Declared: info.Type, Given: v.CtlType()}
	}
	data, err := encodeValue(v)
	if err != nil {
		return nil, err
	}
	if err := writeRaw(oid, data); err != nil {
		return nil, err
	}
	c.logger.V(1).Info("wrote value",
		"name", name, "oid", oid.String(), "type", info.Type.String(), "bytes", len(data))
	return c.Value(name)
}

// Description returns the human-readable description of the named parameter.
// Only FreeBSD publishes descriptions; elsewhere this returns ErrUnsupported.
func (c *Client) Description(name string) (string, error) {
	oid, err := c.Name2OID(name)
	if err != nil {
		return "", err
	}
	return c.DescriptionOID(oid)
}

// DescriptionOID is Description for an already resolved OID.
func (c *Client) DescriptionOID(oid OID) (string, error) {
	if len(oid) == 0 {
		return "", errors.New("sysctl: empty oid")
	}
	return description(oid)
}

// Extract reads the named struct-typed parameter and reinterprets it through
// the layout. The parameter must decode to the node or struct/opaque variant
// and its size must match the layout exactly.
func (c *Client) Extract(l *Layout, name string) (*Record, error) {
	v, err := c.Value(name)
	if err != nil {
		return nil, err
	}
	return l.Extract(v)
}

// ExtractOID is Extract for an already resolved OID.
func (c *Client) ExtractOID(l *Layout, oid OID) (*Record, error) {
	v, err := c.ValueOID(oid)
	if err != nil {
		return nil, err
	}
	return l.Extract(v)
}
