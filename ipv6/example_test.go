// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6_test

import (
	"log"
	"net"

	"github.com/netqos/ipoption/ipv6"
)

func ExamplePacketConn_tracingIPPacketOption() {
	c, err := net.ListenPacket("udp6", "[::1]:1024")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()
	p := ipv6.NewPacketConn(c)
	if err := p.SetControlMessage(ipv6.FlagTrafficClass|ipv6.FlagHopLimit, true); err != nil {
		log.Fatal(err)
	}
	b := make([]byte, 1500)
	for {
		_, cm, src, err := p.ReadFrom(b)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("received from %v: %v", src, cm)
	}
}
