// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4_test

import (
	"bytes"
	"net"
	"runtime"
	"testing"
	"time"

	"github.com/netqos/ipoption/ipv4"
)

func TestConnUnicastTOSAndTTL(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("not supported on %s", runtime.GOOS)
	}

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	done := make(chan bool)
	go acceptor(t, ln, done)

	c, err := net.Dial("tcp4", ln.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	p := ipv4.NewConn(c)
	if err := p.SetTOS(0x28); err != nil {
		t.Fatal(err)
	}
	if v, err := p.TOS(); err != nil {
		t.Fatal(err)
	} else if v != 0x28 {
		t.Fatalf("got %#x; want %#x", v, 0x28)
	}
	if err := p.SetTTL(32); err != nil {
		t.Fatal(err)
	}
	if v, err := p.TTL(); err != nil {
		t.Fatal(err)
	} else if v != 32 {
		t.Fatalf("got %d; want %d", v, 32)
	}
	<-done
}

func acceptor(t *testing.T, ln net.Listener, done chan<- bool) {
	defer func() { done <- true }()
	c, err := ln.Accept()
	if err != nil {
		t.Error(err)
		return
	}
	c.Close()
}

func TestPacketConnReadWriteUnicastUDP(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("not supported on %s", runtime.GOOS)
	}

	c, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	p := ipv4.NewPacketConn(c)

	if err := p.SetControlMessage(ipv4.FlagTOS|ipv4.FlagTTL, true); err != nil {
		t.Fatal(err)
	}
	if on, err := p.ReceiveTOS(); err != nil {
		t.Fatal(err)
	} else if !on {
		t.Fatal("ReceiveTOS = false; want true")
	}
	if on, err := p.ReceiveTTL(); err != nil {
		t.Fatal(err)
	} else if !on {
		t.Fatal("ReceiveTTL = false; want true")
	}

	sc, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer sc.Close()
	s := ipv4.NewPacketConn(sc)
	if err := s.SetTOS(0x28); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTTL(16); err != nil {
		t.Fatal(err)
	}

	wb := []byte("HELLO-R-U-THERE")
	dst := c.LocalAddr().(*net.UDPAddr)
	if n, err := s.WriteTo(wb, nil, dst); err != nil {
		t.Fatal(err)
	} else if n != len(wb) {
		t.Fatalf("wrote %d bytes; want %d", n, len(wb))
	}

	if err := c.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	rb := make([]byte, 128)
	n, cm, _, err := p.ReadFrom(rb)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rb[:n], wb) {
		t.Fatalf("got %q; want %q", rb[:n], wb)
	}
	if cm == nil {
		t.Fatal("no control message")
	}
	if cm.TOS != 0x28 {
		t.Errorf("got tos %#x; want %#x", cm.TOS, 0x28)
	}
	if cm.TTL != 16 {
		t.Errorf("got ttl %d; want %d", cm.TTL, 16)
	}

	if err := p.SetControlMessage(ipv4.FlagTOS|ipv4.FlagTTL, false); err != nil {
		t.Fatal(err)
	}
	if on, err := p.ReceiveTOS(); err != nil {
		t.Fatal(err)
	} else if on {
		t.Fatal("ReceiveTOS = true; want false")
	}
}

func TestPacketConnConcurrentReadWriteUnicastUDP(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("not supported on %s", runtime.GOOS)
	}

	c, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	p := ipv4.NewPacketConn(c)
	if err := p.SetReceiveTTL(true); err != nil {
		t.Fatal(err)
	}
	dst := c.LocalAddr().(*net.UDPAddr)

	const N = 5
	done := make(chan error, N)
	for i := 0; i < N; i++ {
		go func() {
			_, err := p.WriteTo([]byte("PING"), nil, dst)
			done <- err
		}()
	}
	if err := c.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	b := make([]byte, 128)
	for i := 0; i < N; i++ {
		if _, cm, _, err := p.ReadFrom(b); err != nil {
			t.Fatal(err)
		} else if cm == nil || cm.TTL == 0 {
			t.Fatalf("got %v; want a ttl", cm)
		}
	}
	for i := 0; i < N; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
