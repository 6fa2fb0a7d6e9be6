// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main Blankcoin network, which is intended for the
// transfer of monetary value, there also exist two standard networks: the
// public test network and the local regression test network.  These networks
// are incompatible with each other (each sharing a different genesis block and
// different message start bytes) and software should handle errors where input
// intended for one network is used on an application instance running on a
// different network.
//
// The parameters of each network are built by applying ordered layers of
// overrides.  The test network starts from the main network and the regression
// test network starts from the test network.  Building a network rebuilds its
// genesis block from literal inputs and verifies the result against the
// hard-coded genesis hash and merkle root.
//
// A process selects the network it runs on once during startup through a
// Registry, or through the process-wide registry behind ActiveParams, and then
// seals the selection:
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"os"
//
//		"github.com/blankcoin/blankd/chaincfg"
//	)
//
//	func main() {
//		testnet := flag.Bool("testnet", false, "operate on the test network")
//		regtest := flag.Bool("regtest", false, "operate on the regression test network")
//		flag.Parse()
//
//		if !chaincfg.SelectParamsFromFlags(*testnet, *regtest) {
//			fmt.Fprintln(os.Stderr, "invalid combination of -testnet and -regtest")
//			os.Exit(1)
//		}
//		chaincfg.DefaultRegistry().Seal()
//
//		// later...
//		fmt.Println(chaincfg.ActiveParams().GenesisHash)
//	}
package chaincfg
