// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package sockopt

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func (o *Option) getInt(rc syscall.RawConn) (int, error) {
	var (
		v    int
		serr error
	)
	err := rc.Control(func(fd uintptr) {
		v, serr = unix.GetsockoptInt(int(fd), o.Level, o.Name)
	})
	if err != nil {
		return 0, err
	}
	if serr != nil {
		return 0, os.NewSyscallError("getsockopt", serr)
	}
	return v, nil
}

func (o *Option) setInt(rc syscall.RawConn, v int) error {
	var serr error
	err := rc.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), o.Level, o.Name, v)
	})
	if err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("setsockopt", serr)
	}
	return nil
}
