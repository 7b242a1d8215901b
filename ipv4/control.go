// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"fmt"
	"sync"
)

// ControlFlags select the IP-level fields delivered with received
// datagrams.
type ControlFlags uint

const (
	FlagTOS ControlFlags = 1 << iota // pass the type-of-service byte on the received packet
	FlagTTL                          // pass the time-to-live on the received packet
)

// A ControlMessage represents per-packet IP-level option data.
type ControlMessage struct {
	TOS int // type-of-service byte
	TTL int // time-to-live
}

func (cm *ControlMessage) String() string {
	if cm == nil {
		return "<nil>"
	}
	return fmt.Sprintf("tos=%#x ttl=%d", cm.TOS, cm.TTL)
}

// Marshal packs cm into socket ancillary data for transmission. It
// returns nil when the platform has no per-packet transmission
// support for the fields cm carries.
func (cm *ControlMessage) Marshal() []byte {
	if cm == nil {
		return nil
	}
	var oob []byte
	for i := range ctlOpts {
		if ctlOpts[i].marshal == nil {
			continue
		}
		oob = ctlOpts[i].marshal(oob, cm)
	}
	return oob
}

// rawOpt mirrors the receive flags currently enabled on the socket so
// the ancillary data buffer for ReadFrom can be sized without a
// kernel round trip.
type rawOpt struct {
	mu     sync.Mutex
	cflags ControlFlags
}

func (o *rawOpt) update(f ControlFlags, on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if on {
		o.cflags |= f
	} else {
		o.cflags &^= f
	}
}

func (o *rawOpt) flags() ControlFlags {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cflags
}

// A ctlOpt describes how one IP-level field travels as a control
// message on the running platform.
type ctlOpt struct {
	name    int // cmsg type of the received payload
	length  int // length of the received payload
	marshal func([]byte, *ControlMessage) []byte
	parse   func(*ControlMessage, []byte)
}

// Control message options.
const (
	ctlTOS = iota // header field
	ctlTTL        // header field
	ctlMax
)
