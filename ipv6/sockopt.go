// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6

import "github.com/netqos/ipoption/internal/sockopt"

// errOpNoSupport is reported on platforms whose option table lacks
// the requested option.
var errOpNoSupport = sockopt.ErrNotSupported

// Sticky socket options.
const (
	ssoTrafficClass        = iota // header field for unicast packets, RFC 3542
	ssoHopLimit                   // header field for unicast packets, RFC 3493
	ssoReceiveTrafficClass        // header field on received packets, RFC 3542
	ssoReceiveHopLimit            // header field on received packets, RFC 3542
)
