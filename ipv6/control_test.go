// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6

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
			opt.update(FlagTrafficClass, true)
			opt.update(FlagHopLimit, true)
			opt.update(FlagTrafficClass, false)
		}()
	}
	wg.Wait()

	if f := opt.flags(); f != FlagHopLimit {
		t.Fatalf("got %#x; want %#x", f, FlagHopLimit)
	}
}

func TestControlMessageString(t *testing.T) {
	var cm *ControlMessage
	if s := cm.String(); s != "<nil>" {
		t.Errorf("got %q; want %q", s, "<nil>")
	}
	cm = &ControlMessage{TrafficClass: 0xb8, HopLimit: 5}
	if s := cm.String(); s != "tclass=0xb8 hoplim=5" {
		t.Errorf("got %q", s)
	}
}

func TestNilControlMessageMarshal(t *testing.T) {
	var cm *ControlMessage
	if b := cm.Marshal(); b != nil {
		t.Fatalf("got %v; want nil", b)
	}
}
