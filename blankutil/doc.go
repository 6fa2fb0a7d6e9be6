// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blankutil provides Blankcoin-specific encodings of the addresses and
keys described by the network version prefixes in package chaincfg.

# Base58Check Overview

Addresses and keys are encoded as base58 strings of a version prefix, a
payload and the first four bytes of the double sha256 of the prefix and
payload.  CheckEncode and CheckDecode implement the encoding for prefixes of
any length.

# Address Overview

The Address interface provides an abstraction for a Blankcoin address.  This
package provides implementations for the pay-to-pubkey, pay-to-pubkey-hash,
and pay-to-script-hash address types.  The version byte of an address is taken
from the network parameters passed when it is created or decoded, so an address
of one network fails to decode against the parameters of another.

# Key Overview

WIF implements the Wallet Import Format for secp256k1 private keys and
ExtendedKeyNetwork checks the version of a BIP32 extended key against a
network.
*/
package blankutil
