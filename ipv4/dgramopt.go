// Copyright 2026 The ipoption Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipv4

// ReceiveTOS reports whether the type-of-service field of each
// received datagram is delivered as ancillary data.
func (c *PacketConn) ReceiveTOS() (bool, error) {
	if !c.genericOpt.ok() {
		return false, errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTOS]
	if !ok {
		return false, errOpNoSupport
	}
	return so.GetBool(c.rc)
}

// SetReceiveTOS enables or disables the delivery of the
// type-of-service field of each received datagram as ancillary data.
func (c *PacketConn) SetReceiveTOS(on bool) error {
	if !c.genericOpt.ok() {
		return errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTOS]
	if !ok {
		return errOpNoSupport
	}
	if err := so.SetBool(c.rc, on); err != nil {
		return err
	}
	c.payloadHandler.rawOpt.update(FlagTOS, on)
	return nil
}

// ReceiveTTL reports whether the time-to-live field of each received
// datagram is delivered as ancillary data.
func (c *PacketConn) ReceiveTTL() (bool, error) {
	if !c.genericOpt.ok() {
		return false, errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTTL]
	if !ok {
		return false, errOpNoSupport
	}
	return so.GetBool(c.rc)
}

// SetReceiveTTL enables or disables the delivery of the time-to-live
// field of each received datagram as ancillary data.
func (c *PacketConn) SetReceiveTTL(on bool) error {
	if !c.genericOpt.ok() {
		return errInvalidConn
	}
	so, ok := sockOpts[ssoReceiveTTL]
	if !ok {
		return errOpNoSupport
	}
	if err := so.SetBool(c.rc, on); err != nil {
		return err
	}
	c.payloadHandler.rawOpt.update(FlagTTL, on)
	return nil
}

// SetControlMessage enables or disables the delivery of the IP-level
// fields selected by cf on received datagrams.
func (c *PacketConn) SetControlMessage(cf ControlFlags, on bool) error {
	if cf&FlagTOS != 0 {
		if err := c.SetReceiveTOS(on); err != nil {
			return err
		}
	}
	if cf&FlagTTL != 0 {
		if err := c.SetReceiveTTL(on); err != nil {
			return err
		}
	}
	return nil
}
