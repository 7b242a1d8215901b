// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netqos/ipoption/dscp"
	"github.com/netqos/ipoption/ipv4"
	"github.com/netqos/ipoption/ipv6"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <host:port>",
		Short: "report the kernel's default header field values for new UDP sockets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs *multierror.Error
			if err := showIPv4(args[0]); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("ipv4: %w", err))
			}
			if err := showIPv6(args[0]); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("ipv6: %w", err))
			}
			return errs.ErrorOrNil()
		},
	}
}

func showIPv4(addr string) error {
	c, err := net.Dial("udp4", addr)
	if err != nil {
		return err
	}
	defer c.Close()
	p := ipv4.NewConn(c)
	tos, err := p.TOS()
	if err != nil {
		return err
	}
	ttl, err := p.TTL()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"tos":  fmt.Sprintf("%#x", tos),
		"dscp": dscp.FromTOS(tos).String(),
		"ttl":  ttl,
	}).Info("ipv4 defaults")
	return nil
}

func showIPv6(addr string) error {
	c, err := net.Dial("udp6", addr)
	if err != nil {
		return err
	}
	defer c.Close()
	p := ipv6.NewConn(c)
	tclass, err := p.TrafficClass()
	if err != nil {
		return err
	}
	hoplim, err := p.HopLimit()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"tclass": fmt.Sprintf("%#x", tclass),
		"dscp":   dscp.FromTOS(tclass).String(),
		"hoplim": hoplim,
	}).Info("ipv6 defaults")
	return nil
}
