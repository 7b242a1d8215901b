// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sockopt

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

func (o *Option) getInt(rc syscall.RawConn) (int, error) {
	var (
		v    int32
		serr error
	)
	l := int32(4)
	err := rc.Control(func(fd uintptr) {
		serr = windows.Getsockopt(windows.Handle(fd), int32(o.Level), int32(o.Name), (*byte)(unsafe.Pointer(&v)), &l)
	})
	if err != nil {
		return 0, err
	}
	if serr != nil {
		return 0, os.NewSyscallError("getsockopt", serr)
	}
	return int(v), nil
}

func (o *Option) setInt(rc syscall.RawConn, v int) error {
	var serr error
	i := int32(v)
	err := rc.Control(func(fd uintptr) {
		serr = windows.Setsockopt(windows.Handle(fd), int32(o.Level), int32(o.Name), (*byte)(unsafe.Pointer(&i)), 4)
	})
	if err != nil {
		return err
	}
	if serr != nil {
		return os.NewSyscallError("setsockopt", serr)
	}
	return nil
}
