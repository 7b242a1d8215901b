// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iana provides protocol numbers assigned by the Internet
// Assigned Numbers Authority that are shared by the platform-specific
// socket-option tables.
package iana

// Internet protocol numbers, from the IANA Protocol Numbers registry.
const (
	ProtocolIP   = 0  // IPv4 encapsulation, pseudo protocol number
	ProtocolIPv6 = 41 // IPv6 encapsulation
)
