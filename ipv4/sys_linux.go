// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"golang.org/x/sys/unix"

	"github.com/netqos/ipoption/internal/iana"
	"github.com/netqos/ipoption/internal/sockopt"
)

// The kernel reports a received time-to-live as a 4-byte integer
// typed IP_TTL, while the type-of-service byte arrives as a single
// octet typed IP_TOS. Both may also be attached to outgoing
// datagrams.
var ctlOpts [ctlMax]ctlOpt

// ctlOpts is populated in init rather than in its declaration because
// the marshal functions refer back to ctlOpts, which the compiler
// would otherwise reject as an initialization cycle.
func init() {
	ctlOpts = [ctlMax]ctlOpt{
		ctlTOS: {unix.IP_TOS, 1, marshalTOS, parseTOS},
		ctlTTL: {unix.IP_TTL, 4, marshalTTL, parseTTL},
	}
}

var (
	sockOpts = map[int]*sockopt.Option{
		ssoTOS:        {Level: iana.ProtocolIP, Name: unix.IP_TOS},
		ssoTTL:        {Level: iana.ProtocolIP, Name: unix.IP_TTL},
		ssoReceiveTOS: {Level: iana.ProtocolIP, Name: unix.IP_RECVTOS},
		ssoReceiveTTL: {Level: iana.ProtocolIP, Name: unix.IP_RECVTTL},
	}
)
