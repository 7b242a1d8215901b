// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || freebsd

package ipv6

import (
	"golang.org/x/sys/unix"

	"github.com/netqos/ipoption/internal/iana"
	"github.com/netqos/ipoption/internal/sockopt"
)

var (
	ctlOpts = [ctlMax]ctlOpt{
		ctlTrafficClass: {unix.IPV6_TCLASS, 4, marshalTrafficClass, parseTrafficClass},
		ctlHopLimit:     {unix.IPV6_HOPLIMIT, 4, marshalHopLimit, parseHopLimit},
	}

	sockOpts = map[int]*sockopt.Option{
		ssoTrafficClass:        {Level: iana.ProtocolIPv6, Name: unix.IPV6_TCLASS},
		ssoHopLimit:            {Level: iana.ProtocolIPv6, Name: unix.IPV6_UNICAST_HOPS},
		ssoReceiveTrafficClass: {Level: iana.ProtocolIPv6, Name: unix.IPV6_RECVTCLASS},
		ssoReceiveHopLimit:     {Level: iana.ProtocolIPv6, Name: unix.IPV6_RECVHOPLIMIT},
	}
)
