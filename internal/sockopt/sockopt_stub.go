// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package sockopt

import "syscall"

func (o *Option) getInt(rc syscall.RawConn) (int, error) {
	return 0, ErrNotSupported
}

func (o *Option) setInt(rc syscall.RawConn, v int) error {
	return ErrNotSupported
}
