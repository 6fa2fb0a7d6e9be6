// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"time"

	"github.com/blankcoin/blankd/wire"
)

// mainNetOverrides sets every parameter of the main network.  It is the first
// layer of all networks.
func mainNetOverrides(d *paramsDraft) {
	d.Net = MainNet
	d.Name = "mainnet"
	d.Magic = wire.MainNet // 27 33 48 63
	d.AlertPubKey = hexDecode("040bd5d0698b75493d07987b48076a38ef1024bef7" +
		"c0e0b512c35e45bbfca976ae655e83439cf91bccc34921968ad2022a127ff90e79" +
		"86506c83716e5c7fbdc631")
	d.DefaultPort = "51555"
	d.RPCPort = "51556"

	// The highest proof of work value a Blankcoin block can have for the
	// main network.  It is the value 2^236 - 1.
	d.PowLimit = powLimitFromShift(20)

	// The genesis block pays its reward to a fixed key and commits to the
	// release headline.  Its bits default to the compact pow limit, which
	// is 0x1e0fffff for the main network.
	d.genesis = GenesisTemplate{
		Version:       1,
		TimestampText: "17 June 2018 - BLANKCOIN RELEASE",
		ExtraNonce:    42,
		RewardPubKey: hexDecode("0483b2115785c858e40c37a7513b14e2b23afd2cd32" +
			"b4730f7602cec4e80bfe344c1b7897bdc97cdd3ff3fb44851b7d4d58128256" +
			"bca181bc5a0194938387f3b23"),
		Reward:    5000,
		TxTime:    time.Unix(1529232359, 0), // Sun, 17 Jun 2018 10:45:59 UTC
		BlockTime: time.Unix(1529232359, 0),
		Nonce:     293707,
	}
	d.wantGenesisHash = *newHashFromStr("0000036f4e73eda08265f7f5ae698d6755" +
		"18ac084d1bc7a357ec5da3e9a76134")
	d.wantGenesisMerkle = *newHashFromStr("66f7f386315d59c8ee5fbc5946cd4f7a" +
		"e5fdb840d88c84b55638acad76f9e2f8")

	// Address encoding magics
	d.Prefixes = AddressPrefixes{
		PubKeyHashAddrID: 25,  // starts with B
		ScriptHashAddrID: 135, // starts with w
		PrivateKeyID:     49,  // starts with 2 or 8

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	}

	// There are no DNS seeds; peers bootstrap from the fixed seeds.
	d.DNSSeeds = nil
	d.seeds = mustParseSeedTable(mainNetSeedTable)

	d.DataDirName = ""
	d.LastPoWBlock = math.MaxInt32
	d.RequireRPCPassword = true
}

// MainNetParams returns the network parameters for the main Blankcoin
// network.
func MainNetParams() *Params {
	return mustBuild(MainNet)
}
