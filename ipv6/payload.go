// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6

import "net"

type payloadHandler struct {
	net.PacketConn
	rawOpt
}

func (c *payloadHandler) ok() bool { return c != nil && c.PacketConn != nil }

// ReadFrom reads a payload of the received IPv6 datagram from the
// endpoint c, copying the payload into b. It returns the number of
// bytes copied into b, the control message cm and the source address
// src of the received datagram. cm is nil when no IP-level fields
// were delivered with the datagram.
func (c *payloadHandler) ReadFrom(b []byte) (n int, cm *ControlMessage, src net.Addr, err error) {
	if !c.ok() {
		return 0, nil, nil, errInvalidConn
	}
	oob := oobBuffer(c.rawOpt.flags())
	var nn int
	switch p := c.PacketConn.(type) {
	case *net.UDPConn:
		if n, nn, _, src, err = p.ReadMsgUDP(b, oob); err != nil {
			return 0, nil, nil, err
		}
	case *net.IPConn:
		if n, nn, _, src, err = p.ReadMsgIP(b, oob); err != nil {
			return 0, nil, nil, err
		}
	default:
		if n, src, err = c.PacketConn.ReadFrom(b); err != nil {
			return 0, nil, nil, err
		}
		return n, nil, src, nil
	}
	if nn > 0 {
		if cm, err = parseControlMessage(oob[:nn]); err != nil {
			return 0, nil, nil, err
		}
	}
	return n, cm, src, nil
}

// WriteTo writes a payload of the IPv6 datagram to the destination
// address dst through the endpoint c, copying the payload from b.
// The control message cm requests per-packet field values for the
// outgoing datagram; it may be nil, and it is ignored on platforms
// without per-packet transmission support.
func (c *payloadHandler) WriteTo(b []byte, cm *ControlMessage, dst net.Addr) (n int, err error) {
	if !c.ok() {
		return 0, errInvalidConn
	}
	if dst == nil {
		return 0, errMissingAddress
	}
	oob := cm.Marshal()
	switch p := c.PacketConn.(type) {
	case *net.UDPConn:
		a, ok := dst.(*net.UDPAddr)
		if !ok {
			return 0, errInvalidAddrType
		}
		n, _, err = p.WriteMsgUDP(b, oob, a)
	case *net.IPConn:
		a, ok := dst.(*net.IPAddr)
		if !ok {
			return 0, errInvalidAddrType
		}
		n, _, err = p.WriteMsgIP(b, oob, a)
	default:
		n, err = c.PacketConn.WriteTo(b, dst)
	}
	return n, err
}
