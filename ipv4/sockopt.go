// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

import "github.com/netqos/ipoption/internal/sockopt"

// errOpNoSupport is reported on platforms whose option table lacks
// the requested option.
var errOpNoSupport = sockopt.ErrNotSupported

// Sticky socket options.
const (
	ssoTOS        = iota // type-of-service field for outgoing packets, RFC 791
	ssoTTL               // time-to-live field for outgoing packets, RFC 791
	ssoReceiveTOS        // type-of-service field on received packets
	ssoReceiveTTL        // time-to-live field on received packets
)
