// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6

import (
	"github.com/netqos/ipoption/internal/iana"
	"github.com/netqos/ipoption/internal/sockopt"
)

// See ws2tcpip.h.
const (
	sysIPV6_UNICAST_HOPS = 0x4
)

// Winsock exposes neither the traffic class option nor an ancillary
// data path for received IP-level fields.
var (
	ctlOpts = [ctlMax]ctlOpt{}

	sockOpts = map[int]*sockopt.Option{
		ssoHopLimit: {Level: iana.ProtocolIPv6, Name: sysIPV6_UNICAST_HOPS},
	}
)
