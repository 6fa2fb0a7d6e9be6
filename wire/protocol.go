// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// CurrencyNet represents which Blankcoin network a message belongs to.  On the
// wire it is written little endian, so the message start bytes of each network
// are the little endian encoding of its value.
type CurrencyNet uint32

// Constants used to indicate the message Blankcoin network.  They can also be
// used to seek to the next message when a stream's state is unknown, but this
// package does not provide that functionality since it's generally a better
// idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main Blankcoin network.
	MainNet CurrencyNet = 0x63483327

	// TestNet represents the public Blankcoin test network.
	TestNet CurrencyNet = 0x421d23eb

	// RegNet represents the local regression test network.
	RegNet CurrencyNet = 0x32ad1544
)

// cnStrings is a map of Blankcoin networks back to their constant names for
// pretty printing.
var cnStrings = map[CurrencyNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegNet:  "RegNet",
}

// String returns the CurrencyNet in human-readable form.
func (n CurrencyNet) String() string {
	if s, ok := cnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown CurrencyNet (%d)", uint32(n))
}

// MessageStart returns the four bytes that prefix every wire message sent on
// the network.
func (n CurrencyNet) MessageStart() [4]byte {
	var start [4]byte
	littleEndian.PutUint32(start[:], uint32(n))
	return start
}
