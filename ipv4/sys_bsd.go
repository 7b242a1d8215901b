// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || freebsd

package ipv4

import (
	"golang.org/x/sys/unix"

	"github.com/netqos/ipoption/internal/iana"
	"github.com/netqos/ipoption/internal/sockopt"
)

// Received fields arrive as single octets typed by the IP_RECV*
// option name. There is no per-packet transmission path for either
// field.
var (
	ctlOpts = [ctlMax]ctlOpt{
		ctlTOS: {unix.IP_RECVTOS, 1, nil, parseTOS},
		ctlTTL: {unix.IP_RECVTTL, 1, nil, parseTTL},
	}

	sockOpts = map[int]*sockopt.Option{
		ssoTOS:        {Level: iana.ProtocolIP, Name: unix.IP_TOS},
		ssoTTL:        {Level: iana.ProtocolIP, Name: unix.IP_TTL},
		ssoReceiveTOS: {Level: iana.ProtocolIP, Name: unix.IP_RECVTOS},
		ssoReceiveTTL: {Level: iana.ProtocolIP, Name: unix.IP_RECVTTL},
	}
)
