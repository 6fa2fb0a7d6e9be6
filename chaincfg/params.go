// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/blankcoin/blankd/wire"
	"github.com/decred/dcrd/chaincfg/chainhash"
	dcrwire "github.com/decred/dcrd/wire"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// maxUint256 is the largest 256-bit unsigned value, 2^256 - 1.
var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

// NetID identifies one of the supported Blankcoin networks.
type NetID uint8

// These constants identify the supported networks.
const (
	// MainNet identifies the production network.
	MainNet NetID = iota

	// TestNet identifies the public test network.
	TestNet

	// RegNet identifies the local regression test network.
	RegNet

	// numNetworks is the number of supported networks.  It must be the last
	// item.
	numNetworks
)

// netIDStrings is a map of network identifiers back to their names for pretty
// printing.
var netIDStrings = map[NetID]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegNet:  "regtest",
}

// String returns the NetID in human-readable form.
func (id NetID) String() string {
	if s, ok := netIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetID (%d)", uint8(id))
}

// IsValid returns whether id names one of the supported networks.
func (id NetID) IsValid() bool {
	return id < numNetworks
}

// Base58Type identifies a kind of base58 encoded object and therefore which
// version prefix to prepend to its payload.
type Base58Type int

// These constants identify the base58 encoded object kinds.
const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
)

// AddressPrefixes houses the version prefixes prepended to base58 encoded
// addresses and keys of a network.
type AddressPrefixes struct {
	// PubKeyHashAddrID is the first byte of a pay-to-pubkey-hash address.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the first byte of a pay-to-script-hash address.
	ScriptHashAddrID byte

	// PrivateKeyID is the first byte of a WIF private key.
	PrivateKeyID byte

	// BIP32 hierarchical deterministic extended key magics.
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte
}

// Base58Prefix returns the version prefix for the passed kind of base58
// encoded object.  It returns nil for an unknown kind.
func (p *AddressPrefixes) Base58Prefix(kind Base58Type) []byte {
	switch kind {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	}
	return nil
}

// Params defines a Blankcoin network by its parameters.  These parameters may
// be used by Blankcoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
//
// Params are never modified after construction and are safe for concurrent
// reads.
type Params struct {
	// Net identifies the network.
	Net NetID

	// Name defines a human-readable identifier for the network.
	Name string

	// Magic defines the magic bytes used to identify the network.
	Magic wire.CurrencyNet

	// AlertPubKey is the uncompressed secp256k1 public key that signs
	// network alerts.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// RPCPort defines the default RPC server port for the network.
	RPCPort string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot chainhash.Hash

	// Prefixes houses the base58 version prefixes of the network.
	Prefixes AddressPrefixes

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string

	// FixedSeeds are the compiled in bootstrap peers with a last seen time
	// of one to two weeks before the parameters were created.
	FixedSeeds []*dcrwire.NetAddress

	// DataDirName is the subdirectory of the application data directory
	// used by the network.  The main network uses the root.
	DataDirName string

	// LastPoWBlock is the height of the last block that may be produced by
	// proof of work.
	LastPoWBlock int64

	// RequireRPCPassword defines whether the RPC server refuses to start
	// without credentials.
	RequireRPCPassword bool
}

// Base58Prefix returns the version prefix of the network for the passed kind
// of base58 encoded object.
func (p *Params) Base58Prefix(kind Base58Type) []byte {
	return p.Prefixes.Base58Prefix(kind)
}

// powLimitFromShift returns the proof-of-work limit ~uint256(0) >> shift.
func powLimitFromShift(shift uint) *big.Int {
	return new(big.Int).Rsh(maxUint256, shift)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs. This is only provided for the hard-coded constants
// so errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
