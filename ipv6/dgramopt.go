// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv6

// ReceiveTrafficClass reports whether the traffic class field of each
// received datagram is delivered as ancillary data.
func (c *PacketConn) ReceiveTrafficClass() (bool, error) {
	if !c.genericOpt.ok() {
		return false, errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTrafficClass]
	if !ok {
		return false, errOpNoSupport
	}
	return so.GetBool(c.rc)
}

// SetReceiveTrafficClass enables or disables the delivery of the
// traffic class field of each received datagram as ancillary data.
func (c *PacketConn) SetReceiveTrafficClass(on bool) error {
	if !c.genericOpt.ok() {
		return errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTrafficClass]
	if !ok {
		return errOpNoSupport
	}
	if err := so.SetBool(c.rc, on); err != nil {
		return err
	}
	c.payloadHandler.rawOpt.update(FlagTrafficClass, on)
	return nil
}

// ReceiveHopLimit reports whether the hop limit field of each
// received datagram is delivered as ancillary data.
func (c *PacketConn) ReceiveHopLimit() (bool, error) {
	if !c.genericOpt.ok() {
		return false, errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveHopLimit]
	if !ok {
		return false, errOpNoSupport
	}
	return so.GetBool(c.rc)
}

// SetReceiveHopLimit enables or disables the delivery of the hop
// limit field of each received datagram as ancillary data.
func (c *PacketConn) SetReceiveHopLimit(on bool) error {
	if !c.genericOpt.ok() {
		return errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveHopLimit]
	if !ok {
		return errOpNoSupport
	}
	if err := so.SetBool(c.rc, on); err != nil {
		return err
	}
	c.payloadHandler.rawOpt.update(FlagHopLimit, on)
	return nil
}

// SetControlMessage enables or disables the delivery of the IP-level
// fields selected by cf on received datagrams.
func (c *PacketConn) SetControlMessage(cf ControlFlags, on bool) error {
	if cf&FlagTrafficClass != 0 {
		if err := c.SetReceiveTrafficClass(on); err != nil {
			return err
		}
	}
	if cf&FlagHopLimit != 0 {
		if err := c.SetReceiveHopLimit(on); err != nil {
			return err
		}
	}
	return nil
}
