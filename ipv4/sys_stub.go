// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin && !freebsd && !windows

package ipv4

import "github.com/netqos/ipoption/internal/sockopt"

var (
	ctlOpts = [ctlMax]ctlOpt{}

	sockOpts = map[int]*sockopt.Option{}
)
