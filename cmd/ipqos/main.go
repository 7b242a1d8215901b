// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ipqos command inspects and sets the IP-level header field
// options on UDP sockets: the IPv4 type-of-service byte and
// time-to-live, and their IPv6 counterparts, traffic class and hop
// limit.
//
// Usage:
//
//	ipqos show <host:port>
//	ipqos send [-6] [--dscp name|--tos n] [--ttl n] <host:port>
//	ipqos recv [-6] <bind>
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:           "ipqos",
		Short:         "inspect and set IP-level QoS socket options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newShowCommand(), newSendCommand(), newRecvCommand())
	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
