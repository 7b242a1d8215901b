// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netqos/ipoption/dscp"
	"github.com/netqos/ipoption/ipv4"
	"github.com/netqos/ipoption/ipv6"
)

func newSendCommand() *cobra.Command {
	var (
		ipv6Mode bool
		dscpName string
		tos      int
		ttl      int
		count    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "send <host:port>",
		Short: "send labeled UDP probe datagrams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dscpName != "" {
				cp, err := dscp.Parse(dscpName)
				if err != nil {
					return err
				}
				tos = cp.TOS()
			}
			if ipv6Mode {
				return send6(args[0], tos, ttl, count, interval)
			}
			return send4(args[0], tos, ttl, count, interval)
		},
	}
	cmd.Flags().BoolVarP(&ipv6Mode, "ipv6", "6", false, "use the IPv6 transport")
	cmd.Flags().StringVar(&dscpName, "dscp", "", "DSCP codepoint for outgoing datagrams (name or number)")
	cmd.Flags().IntVar(&tos, "tos", 0, "type-of-service or traffic class byte for outgoing datagrams")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "time-to-live or hop limit for outgoing datagrams")
	cmd.Flags().IntVarP(&count, "count", "c", 3, "number of datagrams to send")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 200*time.Millisecond, "delay between datagrams")
	return cmd
}

func send4(addr string, tos, ttl, count int, interval time.Duration) error {
	dst, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return err
	}
	c, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return err
	}
	defer c.Close()
	p := ipv4.NewPacketConn(c)
	if tos > 0 {
		if err := p.SetTOS(tos); err != nil {
			return fmt.Errorf("set tos: %w", err)
		}
	}
	if ttl > 0 {
		if err := p.SetTTL(ttl); err != nil {
			return fmt.Errorf("set ttl: %w", err)
		}
	}
	for i := 0; i < count; i++ {
		if i > 0 {
			time.Sleep(interval)
		}
		n, err := p.WriteTo(probePayload(i), nil, dst)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"seq": i, "bytes": n, "dst": dst}).Debug("sent")
	}
	log.WithFields(logrus.Fields{"count": count, "tos": fmt.Sprintf("%#x", tos), "ttl": ttl}).Info("done")
	return nil
}

func send6(addr string, tclass, hoplim, count int, interval time.Duration) error {
	dst, err := net.ResolveUDPAddr("udp6", addr)
	if err != nil {
		return err
	}
	c, err := net.ListenPacket("udp6", ":0")
	if err != nil {
		return err
	}
	defer c.Close()
	p := ipv6.NewPacketConn(c)
	if tclass > 0 {
		if err := p.SetTrafficClass(tclass); err != nil {
			return fmt.Errorf("set traffic class: %w", err)
		}
	}
	if hoplim > 0 {
		if err := p.SetHopLimit(hoplim); err != nil {
			return fmt.Errorf("set hop limit: %w", err)
		}
	}
	for i := 0; i < count; i++ {
		if i > 0 {
			time.Sleep(interval)
		}
		n, err := p.WriteTo(probePayload(i), nil, dst)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"seq": i, "bytes": n, "dst": dst}).Debug("sent")
	}
	log.WithFields(logrus.Fields{"count": count, "tclass": fmt.Sprintf("%#x", tclass), "hoplim": hoplim}).Info("done")
	return nil
}

func probePayload(seq int) []byte {
	return []byte(fmt.Sprintf("ipqos probe %d", seq))
}
