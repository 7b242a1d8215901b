// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sockopt provides access to integer-valued socket options
// through the runtime-managed file descriptor of a network connection.
package sockopt

import (
	"errors"
	"syscall"
)

// ErrNotSupported is reported when a socket option is not implemented
// by the platform the process is running on.
var ErrNotSupported = errors.New("socket option not supported")

// An Option represents a socket option selector.
type Option struct {
	Level int // protocol level
	Name  int // option name, zero means unimplemented
}

// GetInt returns the current value of the option on the socket behind
// rc.
func (o *Option) GetInt(rc syscall.RawConn) (int, error) {
	if o == nil || o.Name < 1 {
		return 0, ErrNotSupported
	}
	return o.getInt(rc)
}

// SetInt sets the option on the socket behind rc to v.
func (o *Option) SetInt(rc syscall.RawConn, v int) error {
	if o == nil || o.Name < 1 {
		return ErrNotSupported
	}
	return o.setInt(rc, v)
}

// GetBool returns whether the option is enabled on the socket behind
// rc.
func (o *Option) GetBool(rc syscall.RawConn) (bool, error) {
	v, err := o.GetInt(rc)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// SetBool enables or disables the option on the socket behind rc.
func (o *Option) SetBool(rc syscall.RawConn, on bool) error {
	return o.SetInt(rc, boolint(on))
}

func boolint(b bool) int {
	if b {
		return 1
	}
	return 0
}
