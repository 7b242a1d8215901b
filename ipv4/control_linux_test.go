// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestControlMessageMarshalParse(t *testing.T) {
	cm := &ControlMessage{TOS: 0x28, TTL: 16}
	b := cm.Marshal()
	if len(b) == 0 {
		t.Fatal("no ancillary data")
	}
	got, err := parseControlMessage(b)
	if err != nil {
		t.Fatal(err)
	}
	if got.TOS != cm.TOS || got.TTL != cm.TTL {
		t.Fatalf("got %v; want %v", got, cm)
	}
}

func TestControlMessageMarshalPartial(t *testing.T) {
	cm := &ControlMessage{TTL: 1}
	got, err := parseControlMessage(cm.Marshal())
	if err != nil {
		t.Fatal(err)
	}
	if got.TOS != 0 || got.TTL != 1 {
		t.Fatalf("got %v; want ttl=1 only", got)
	}
}

func TestParseEmptyControlMessage(t *testing.T) {
	cm, err := parseControlMessage(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cm != nil {
		t.Fatalf("got %v; want nil", cm)
	}
}

func TestOOBBufferLen(t *testing.T) {
	if b := oobBuffer(0); b != nil {
		t.Fatalf("got %d bytes; want nil", len(b))
	}
	want := unix.CmsgSpace(1) + unix.CmsgSpace(4)
	if b := oobBuffer(FlagTOS | FlagTTL); len(b) != want {
		t.Fatalf("got %d bytes; want %d", len(b), want)
	}
}
