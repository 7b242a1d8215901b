// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"errors"
	"net"
	"syscall"
)

var (
	errInvalidConn     = errors.New("invalid connection")
	errMissingAddress  = errors.New("missing address")
	errInvalidAddrType = errors.New("invalid address type")
)

// A Conn represents a network endpoint that uses the IPv4 transport.
// It is used to control basic IP-level socket options such as TOS and
// TTL.
type Conn struct {
	genericOpt
}

// NewConn returns a new Conn.
func NewConn(c net.Conn) *Conn {
	return &Conn{genericOpt{rc: rawConn(c)}}
}

// A PacketConn represents a packet network endpoint that uses the
// IPv4 transport. It is used to control several IP-level socket
// options including the delivery of the TOS and TTL fields on
// received datagrams.
type PacketConn struct {
	genericOpt
	payloadHandler
}

// NewPacketConn returns a new PacketConn using c as its underlying
// transport.
func NewPacketConn(c net.PacketConn) *PacketConn {
	return &PacketConn{
		genericOpt:     genericOpt{rc: rawConn(c)},
		payloadHandler: payloadHandler{PacketConn: c},
	}
}

type genericOpt struct {
	rc syscall.RawConn
}

func (c *genericOpt) ok() bool { return c != nil && c.rc != nil }

// rawConn returns the underlying raw connection of c, or nil when c
// does not expose one.
func rawConn(c interface{}) syscall.RawConn {
	sc, ok := c.(syscall.Conn)
	if !ok {
		return nil
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return nil
	}
	return rc
}
