// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipv4 implements socket options for the type-of-service and
// time-to-live fields of the IPv4 header.
//
// The options are available for net.TCPConn, net.UDPConn and
// net.IPConn which are created as network connections that use the
// IPv4 transport. The type-of-service field and its differentiated
// services reinterpretation are described in RFC 791 and RFC 2474;
// host requirements for the time-to-live field are described in RFC
// 1122.
//
// When a single TCP connection carrying a data flow of multiple
// packets needs to indicate the flow is important, ipv4.Conn is used
// to set the type-of-service field on the IPv4 header for each
// packet.
//
//	c, err := net.Dial("tcp4", "198.51.100.1:80")
//	if err != nil {
//		// error handling
//	}
//	defer c.Close()
//	if err := ipv4.NewConn(c).SetTOS(dscp.AF11.TOS()); err != nil {
//		// error handling
//	}
//
// A datagram-oriented application additionally may arrange delivery
// of the type-of-service byte and time-to-live of each received
// datagram as ancillary data, using ipv4.PacketConn.
//
//	c, err := net.ListenPacket("udp4", "0.0.0.0:1024")
//	if err != nil {
//		// error handling
//	}
//	defer c.Close()
//	p := ipv4.NewPacketConn(c)
//	if err := p.SetControlMessage(ipv4.FlagTOS|ipv4.FlagTTL, true); err != nil {
//		// error handling
//	}
//	b := make([]byte, 1500)
//	for {
//		n, cm, src, err := p.ReadFrom(b)
//		if err != nil {
//			// error handling
//		}
//		// cm.TOS and cm.TTL describe the received datagram
//		_, _, _ = n, cm, src
//	}
package ipv4
