// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netqos/ipoption/dscp"
	"github.com/netqos/ipoption/ipv4"
	"github.com/netqos/ipoption/ipv6"
)

func newRecvCommand() *cobra.Command {
	var ipv6Mode bool
	cmd := &cobra.Command{
		Use:   "recv <bind>",
		Short: "receive UDP datagrams and report their IP-level header fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if ipv6Mode {
				return recv6(ctx, args[0])
			}
			return recv4(ctx, args[0])
		},
	}
	cmd.Flags().BoolVarP(&ipv6Mode, "ipv6", "6", false, "use the IPv6 transport")
	return cmd
}

func recv4(ctx context.Context, bind string) error {
	c, err := net.ListenPacket("udp4", bind)
	if err != nil {
		return err
	}
	defer c.Close()
	go closeOnDone(ctx, c)

	p := ipv4.NewPacketConn(c)
	if err := p.SetControlMessage(ipv4.FlagTOS|ipv4.FlagTTL, true); err != nil {
		log.WithError(err).Warn("header field delivery unavailable")
	}
	log.WithField("addr", c.LocalAddr()).Info("listening")

	b := make([]byte, 1500)
	for {
		n, cm, src, err := p.ReadFrom(b)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		f := logrus.Fields{"src": src, "bytes": n}
		if cm != nil {
			f["tos"] = cm.TOS
			f["dscp"] = dscp.FromTOS(cm.TOS).String()
			f["ttl"] = cm.TTL
		}
		log.WithFields(f).Info("datagram")
	}
}

func recv6(ctx context.Context, bind string) error {
	c, err := net.ListenPacket("udp6", bind)
	if err != nil {
		return err
	}
	defer c.Close()
	go closeOnDone(ctx, c)

	p := ipv6.NewPacketConn(c)
	if err := p.SetControlMessage(ipv6.FlagTrafficClass|ipv6.FlagHopLimit, true); err != nil {
		log.WithError(err).Warn("header field delivery unavailable")
	}
	log.WithField("addr", c.LocalAddr()).Info("listening")

	b := make([]byte, 1500)
	for {
		n, cm, src, err := p.ReadFrom(b)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		f := logrus.Fields{"src": src, "bytes": n}
		if cm != nil {
			f["tclass"] = cm.TrafficClass
			f["dscp"] = dscp.FromTOS(cm.TrafficClass).String()
			f["hoplim"] = cm.HopLimit
		}
		log.WithFields(f).Info("datagram")
	}
}

// closeOnDone unblocks a pending ReadFrom when ctx is canceled.
func closeOnDone(ctx context.Context, c net.PacketConn) {
	<-ctx.Done()
	if err := c.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.WithError(err).Debug("close")
	}
}
