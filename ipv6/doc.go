// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipv6 implements socket options for the traffic class and
// hop limit fields of the IPv6 header.
//
// The options are available for net.TCPConn, net.UDPConn and
// net.IPConn which are created as network connections that use the
// IPv6 transport. The basic socket interface extensions for IPv6 are
// defined in RFC 3493; the advanced interface carrying per-packet
// information is defined in RFC 3542.
//
// ipv6.Conn labels a connection's outgoing packets:
//
//	c, err := net.Dial("tcp6", "[2001:db8::1]:80")
//	if err != nil {
//		// error handling
//	}
//	defer c.Close()
//	if err := ipv6.NewConn(c).SetTrafficClass(0xb8); err != nil {
//		// error handling
//	}
//
// ipv6.PacketConn additionally arranges delivery of the traffic class
// and hop limit of each received datagram as ancillary data:
//
//	c, err := net.ListenPacket("udp6", "[::]:1024")
//	if err != nil {
//		// error handling
//	}
//	defer c.Close()
//	p := ipv6.NewPacketConn(c)
//	if err := p.SetControlMessage(ipv6.FlagTrafficClass|ipv6.FlagHopLimit, true); err != nil {
//		// error handling
//	}
package ipv6
