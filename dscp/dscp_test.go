// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOSRoundTrip(t *testing.T) {
	for cp := range names {
		assert.Equal(t, cp, FromTOS(cp.TOS()), "codepoint %s", cp)
	}
}

func TestTOSIgnoresECN(t *testing.T) {
	for ecn := 0; ecn < 4; ecn++ {
		assert.Equal(t, EF, FromTOS(EF.TOS()|ecn))
	}
}

func TestTOSValues(t *testing.T) {
	// Wire values from RFC 2597 and RFC 3246.
	assert.Equal(t, 0x28, AF11.TOS())
	assert.Equal(t, 0xb8, EF.TOS())
	assert.Equal(t, 0x00, CS0.TOS())
	assert.Equal(t, 0xe0, CS7.TOS())
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Codepoint
	}{
		{"af11", AF11},
		{"AF11", AF11},
		{"ef", EF},
		{"cs6", CS6},
		{"le", LE},
		{"46", EF},
		{"0x2e", EF},
		{"0", CS0},
	} {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "af99", "64", "0x40", "-1", "foo"} {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q)", s)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "af42", AF42.String())
	assert.Equal(t, "ef", EF.String())
	assert.Equal(t, "0x03", Codepoint(3).String())
}
