// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/blankcoin/blankd/wire"
)

// testNetOverrides changes the main network parameters into those of the
// public test network.
func testNetOverrides(d *paramsDraft) {
	d.Net = TestNet
	d.Name = "testnet"
	d.Magic = wire.TestNet // eb 23 1d 42
	d.AlertPubKey = hexDecode("04a2a8b02ad14cdb98f0db4ff2b956514993ec5961" +
		"c304acc85e519d95e2453320b67991bced2b6eadf6996b9c36dffec6b21f090b" +
		"b548500e881c9d0b87d3f7da")
	d.DefaultPort = "55155"
	d.RPCPort = "55156"
	d.DataDirName = "testnet"

	// The test network allows an easier proof of work, 2^240 - 1.
	d.PowLimit = powLimitFromShift(16)

	// The genesis block keeps the main network transaction and time.  Only
	// the bits (0x1f00ffff) and nonce change.  The resulting hash does not
	// meet the proof-of-work target and is accepted because it is
	// hard-coded.
	d.genesis.Bits = 0
	d.genesis.Nonce = 757804
	d.wantGenesisHash = *newHashFromStr("c4076633a17e8e4cc53335653672003" +
		"2d97df61409a4e8efbc2bc30af327fe02")

	// Address encoding magics
	d.Prefixes = AddressPrefixes{
		PubKeyHashAddrID: 85,  // starts with b
		ScriptHashAddrID: 125, // starts with s
		PrivateKeyID:     107, // starts with 4 or G

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	}

	d.DNSSeeds = nil
	d.seeds = mustParseSeedTable(testNetSeedTable)

	d.LastPoWBlock = 0
}

// TestNetParams returns the network parameters for the public Blankcoin test
// network.
func TestNetParams() *Params {
	return mustBuild(TestNet)
}
