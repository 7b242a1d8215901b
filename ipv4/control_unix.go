// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package ipv4

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/netqos/ipoption/internal/iana"
)

// oobBuffer returns a buffer sized for the ancillary data the kernel
// may deliver for the receive flags in cf, or nil when cf selects
// nothing the platform supports.
func oobBuffer(cf ControlFlags) []byte {
	var l int
	if cf&FlagTOS != 0 && ctlOpts[ctlTOS].name > 0 {
		l += unix.CmsgSpace(ctlOpts[ctlTOS].length)
	}
	if cf&FlagTTL != 0 && ctlOpts[ctlTTL].name > 0 {
		l += unix.CmsgSpace(ctlOpts[ctlTTL].length)
	}
	if l == 0 {
		return nil
	}
	return make([]byte, l)
}

func parseControlMessage(b []byte) (*ControlMessage, error) {
	if len(b) == 0 {
		return nil, nil
	}
	scms, err := unix.ParseSocketControlMessage(b)
	if err != nil {
		return nil, os.NewSyscallError("parse socket control message", err)
	}
	cm := &ControlMessage{}
	for _, m := range scms {
		if int(m.Header.Level) != iana.ProtocolIP {
			continue
		}
		for i := range ctlOpts {
			if ctlOpts[i].parse != nil && int(m.Header.Type) == ctlOpts[i].name {
				ctlOpts[i].parse(cm, m.Data)
			}
		}
	}
	return cm, nil
}

func parseTOS(cm *ControlMessage, b []byte) { cm.TOS = cmsgInt(b) }

func parseTTL(cm *ControlMessage, b []byte) { cm.TTL = cmsgInt(b) }

func marshalTOS(b []byte, cm *ControlMessage) []byte {
	if cm.TOS <= 0 {
		return b
	}
	return appendCmsgInt(b, ctlOpts[ctlTOS].name, ctlOpts[ctlTOS].length, cm.TOS)
}

func marshalTTL(b []byte, cm *ControlMessage) []byte {
	if cm.TTL <= 0 {
		return b
	}
	return appendCmsgInt(b, ctlOpts[ctlTTL].name, ctlOpts[ctlTTL].length, cm.TTL)
}

// cmsgInt decodes a control message payload that is either a single
// octet or a native-endian 32-bit integer, depending on the platform.
func cmsgInt(b []byte) int {
	if len(b) >= 4 {
		return int(*(*int32)(unsafe.Pointer(&b[0])))
	}
	if len(b) > 0 {
		return int(b[0])
	}
	return 0
}

func appendCmsgInt(b []byte, typ, length, v int) []byte {
	m := make([]byte, unix.CmsgSpace(length))
	h := (*unix.Cmsghdr)(unsafe.Pointer(&m[0]))
	h.Level = int32(iana.ProtocolIP)
	h.Type = int32(typ)
	h.SetLen(unix.CmsgLen(length))
	data := m[unix.CmsgLen(0):]
	if length == 1 {
		data[0] = byte(v)
	} else {
		*(*int32)(unsafe.Pointer(&data[0])) = int32(v)
	}
	return append(b, m...)
}
