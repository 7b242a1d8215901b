// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import (
	"github.com/netqos/ipoption/internal/iana"
	"github.com/netqos/ipoption/internal/sockopt"
)

// See ws2tcpip.h.
const (
	sysIP_TOS = 0x3
	sysIP_TTL = 0x4
)

// Winsock has no ancillary data path for received IP-level fields.
var (
	ctlOpts = [ctlMax]ctlOpt{}

	sockOpts = map[int]*sockopt.Option{
		ssoTOS: {Level: iana.ProtocolIP, Name: sysIP_TOS},
		ssoTTL: {Level: iana.ProtocolIP, Name: sysIP_TTL},
	}
)
