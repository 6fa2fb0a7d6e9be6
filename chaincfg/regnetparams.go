// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/blankcoin/blankd/wire"
)

// regNetOverrides changes the test network parameters into those of the local
// regression test network.  The RPC port and the fixed seeds are kept from the
// test network.
func regNetOverrides(d *paramsDraft) {
	d.Net = RegNet
	d.Name = "regtest"
	d.Magic = wire.RegNet // 44 15 ad 32
	d.DefaultPort = "51555"
	d.DataDirName = "regtest"

	// Nearly any hash satisfies the regression test proof of work, whose
	// limit is 2^255 - 1.
	d.PowLimit = powLimitFromShift(1)

	// The block time moves while the coinbase keeps the main network time,
	// so the merkle root is unchanged.  The bits are 0x207fffff.
	d.genesis.BlockTime = time.Unix(1528612811, 0) // Sun, 10 Jun 2018 06:40:11 UTC
	d.genesis.Bits = 0
	d.genesis.Nonce = 446013
	d.wantGenesisHash = *newHashFromStr("68edaf632baafaaac8a2c042a1cb511f" +
		"badcdd483a8febed88bf6bef2f3d7a7f")

	// The one byte prefixes are distinct from the other networks so keys
	// and addresses cannot be confused between them.  The extended key
	// magics are shared with the test network.
	d.Prefixes.PubKeyHashAddrID = 111 // starts with m or n
	d.Prefixes.ScriptHashAddrID = 196 // starts with 2
	d.Prefixes.PrivateKeyID = 239     // starts with 9 or c

	// Regression test mode doesn't have any DNS seeds.
	d.DNSSeeds = nil

	d.RequireRPCPassword = false
}

// RegNetParams returns the network parameters for the local regression test
// Blankcoin network.
func RegNetParams() *Params {
	return mustBuild(RegNet)
}
