// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package ipv4

func oobBuffer(cf ControlFlags) []byte { return nil }

func parseControlMessage(b []byte) (*ControlMessage, error) { return nil, nil }
