// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dscp provides the named Differentiated Services codepoints
// carried in the upper six bits of the IPv4 type-of-service byte and
// the IPv6 traffic class field.
package dscp

import (
	"fmt"
	"strconv"
	"strings"
)

// A Codepoint is a 6-bit Differentiated Services codepoint.
type Codepoint uint8

// Class selectors (RFC 2474), assured forwarding classes (RFC 2597),
// expedited forwarding (RFC 3246) and lower effort (RFC 8622).
const (
	CS0 Codepoint = 0x00 // best effort
	CS1 Codepoint = 0x08
	CS2 Codepoint = 0x10
	CS3 Codepoint = 0x18
	CS4 Codepoint = 0x20
	CS5 Codepoint = 0x28
	CS6 Codepoint = 0x30 // internetwork control
	CS7 Codepoint = 0x38 // network control

	AF11 Codepoint = 0x0a
	AF12 Codepoint = 0x0c
	AF13 Codepoint = 0x0e
	AF21 Codepoint = 0x12
	AF22 Codepoint = 0x14
	AF23 Codepoint = 0x16
	AF31 Codepoint = 0x1a
	AF32 Codepoint = 0x1c
	AF33 Codepoint = 0x1e
	AF41 Codepoint = 0x22
	AF42 Codepoint = 0x24
	AF43 Codepoint = 0x26

	EF Codepoint = 0x2e // expedited forwarding
	LE Codepoint = 0x01 // lower effort
)

var names = map[Codepoint]string{
	CS0:  "cs0",
	CS1:  "cs1",
	CS2:  "cs2",
	CS3:  "cs3",
	CS4:  "cs4",
	CS5:  "cs5",
	CS6:  "cs6",
	CS7:  "cs7",
	AF11: "af11",
	AF12: "af12",
	AF13: "af13",
	AF21: "af21",
	AF22: "af22",
	AF23: "af23",
	AF31: "af31",
	AF32: "af32",
	AF33: "af33",
	AF41: "af41",
	AF42: "af42",
	AF43: "af43",
	EF:   "ef",
	LE:   "le",
}

var codepoints = make(map[string]Codepoint, len(names))

func init() {
	for cp, name := range names {
		codepoints[name] = cp
	}
}

// String returns the symbolic name of cp, or its numeric form when cp
// has no assigned name.
func (cp Codepoint) String() string {
	if s, ok := names[cp]; ok {
		return s
	}
	return fmt.Sprintf("%#04x", uint8(cp))
}

// TOS returns cp shifted into the upper six bits of a type-of-service
// or traffic class octet, with the ECN bits clear.
func (cp Codepoint) TOS() int {
	return int(cp&0x3f) << 2
}

// FromTOS extracts the codepoint from a type-of-service or traffic
// class octet, discarding the ECN bits.
func FromTOS(tos int) Codepoint {
	return Codepoint(tos>>2) & 0x3f
}

// Parse interprets s as a symbolic codepoint name ("af11", "EF") or a
// numeric codepoint value ("46", "0x2e").
func Parse(s string) (Codepoint, error) {
	if cp, ok := codepoints[strings.ToLower(s)]; ok {
		return cp, nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil || v > 0x3f {
		return 0, fmt.Errorf("dscp: invalid codepoint %q", s)
	}
	return Codepoint(v), nil
}
