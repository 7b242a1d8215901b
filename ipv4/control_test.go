// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"sync"
	"testing"
)

func TestRawOptFlags(t *testing.T) {
	var opt rawOpt

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			opt.update(FlagTOS, true)
			opt.update(FlagTTL, true)
			opt.update(FlagTOS, false)
		}()
	}
	wg.Wait()

	if f := opt.flags(); f != FlagTTL {
		t.Fatalf("got %#x; want %#x", f, FlagTTL)
	}
}

func TestControlMessageString(t *testing.T) {
	var cm *ControlMessage
	if s := cm.String(); s != "<nil>" {
		t.Errorf("got %q; want %q", s, "<nil>")
	}
	cm = &ControlMessage{TOS: 0x28, TTL: 64}
	if s := cm.String(); s != "tos=0x28 ttl=64" {
		t.Errorf("got %q", s)
	}
}

func TestNilControlMessageMarshal(t *testing.T) {
	var cm *ControlMessage
	if b := cm.Marshal(); b != nil {
		t.Fatalf("got %v; want nil", b)
	}
}
