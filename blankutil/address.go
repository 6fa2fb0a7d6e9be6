// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/blankcoin/blankd/chaincfg"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// AddressParams defines an interface that is used to provide the version
// prefixes required when encoding and decoding addresses and keys.  These
// values are unique per network.  It is satisfied by *chaincfg.Params.
type AddressParams interface {
	Base58Prefix(kind chaincfg.Base58Type) []byte
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(sha[:])
	return hasher.Sum(nil)
}

// prefixByte returns the single byte version prefix of the passed kind.
func prefixByte(net AddressParams, kind chaincfg.Base58Type) byte {
	return net.Base58Prefix(kind)[0]
}

// encodeAddress returns a human-readable payment address given a ripemd160
// hash and the version byte which encodes the network and address type.  It
// is used in both pay-to-pubkey-hash (P2PKH) and pay-to-script-hash (P2SH)
// address encoding.
func encodeAddress(hash160 []byte, netID byte) string {
	// Format is 1 byte for a network and address class (i.e. P2PKH vs
	// P2SH), 20 bytes for a RIPEMD160 hash, and 4 bytes of checksum.
	return CheckEncode(hash160[:ripemd160.Size], []byte{netID})
}

// Address is an interface type for any type of destination a transaction
// output may spend to.  This includes pay-to-pubkey (P2PK),
// pay-to-pubkey-hash (P2PKH), and pay-to-script-hash (P2SH).
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	//
	// Please note that String differs subtly from Address: String will
	// return the value as a string without any conversion, while Address
	// may convert destination types (for example, converting pubkeys to
	// P2PKH addresses) before encoding as a payment address string.
	String() string

	// Address returns the string encoding of the payment address associated
	// with the Address value.  See the comment on String for how this
	// method differs from String.
	Address() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// Hash160 returns the Hash160(data) where data is the data normally
	// hashed to 160 bits from the respective address type.
	Hash160() *[ripemd160.Size]byte

	// IsForNet returns whether the address is associated with the passed
	// network.
	IsForNet(net AddressParams) bool
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for a known address type and is for the
// provided network.
func DecodeAddress(addr string, net AddressParams) (Address, error) {
	decoded, version, err := CheckDecode(addr, 1)
	if err != nil {
		return nil, err
	}
	if len(decoded) != ripemd160.Size {
		str := fmt.Sprintf("decoded address payload is %d bytes instead of "+
			"%d", len(decoded), ripemd160.Size)
		return nil, makeError(ErrInvalidFormat, str)
	}

	switch version[0] {
	case prefixByte(net, chaincfg.PubKeyAddress):
		return NewAddressPubKeyHash(decoded, net)

	case prefixByte(net, chaincfg.ScriptAddress):
		return NewAddressScriptHashFromHash(decoded, net)
	}

	str := fmt.Sprintf("address version %d is not an address of the "+
		"network", version[0])
	return nil, makeError(ErrUnknownAddressType, str)
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, net AddressParams) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, prefixByte(net, chaincfg.PubKeyAddress))
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking
// it up through its parameters.
func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("pubkey hash is %d bytes instead of %d",
			len(pkHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashLen, str)
	}

	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-pubkey-hash address.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) Address() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash.  Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the pubkey hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as map
// keys).
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// IsForNet returns whether the pay-to-pubkey-hash address is associated with
// the passed network.
func (a *AddressPubKeyHash) IsForNet(net AddressParams) bool {
	return a.netID == prefixByte(net, chaincfg.PubKeyAddress)
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressScriptHash returns a new AddressScriptHash.
func NewAddressScriptHash(serializedScript []byte, net AddressParams) (*AddressScriptHash, error) {
	return NewAddressScriptHashFromHash(Hash160(serializedScript), net)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, net AddressParams) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes instead of %d",
			len(scriptHash), ripemd160.Size)
		return nil, makeError(ErrInvalidHashLen, str)
	}

	addr := &AddressScriptHash{netID: prefixByte(net, chaincfg.ScriptAddress)}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// Address returns the string encoding of a pay-to-script-hash address.
//
// Part of the Address interface.
func (a *AddressScriptHash) Address() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a script hash.  Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the script hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as map
// keys).
func (a *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// IsForNet returns whether the pay-to-script-hash address is associated with
// the passed network.
func (a *AddressScriptHash) IsForNet(net AddressParams) bool {
	return a.netID == prefixByte(net, chaincfg.ScriptAddress)
}

// AddressPubKey is an Address for a secp256k1 pay-to-pubkey transaction.  It
// has no encoding of its own and is paid to through its pubkey hash address.
type AddressPubKey struct {
	pubKey     *secp256k1.PublicKey
	compressed bool
	netID      byte
}

// NewAddressPubKey returns a new AddressPubKey which represents a
// pay-to-pubkey address.  The serialized public key may be compressed or
// uncompressed and keeps its format.
func NewAddressPubKey(serializedPubKey []byte, net AddressParams) (*AddressPubKey, error) {
	pubKey, err := secp256k1.ParsePubKey(serializedPubKey)
	if err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, makeError(ErrInvalidPubKey, str)
	}

	return &AddressPubKey{
		pubKey:     pubKey,
		compressed: len(serializedPubKey) == secp256k1.PubKeyBytesLenCompressed,
		netID:      prefixByte(net, chaincfg.PubKeyAddress),
	}, nil
}

// serialize returns the serialization of the public key in the format it was
// created with.
func (a *AddressPubKey) serialize() []byte {
	if a.compressed {
		return a.pubKey.SerializeCompressed()
	}
	return a.pubKey.SerializeUncompressed()
}

// Address returns the string encoding of the public key as a
// pay-to-pubkey-hash.  Note that the public key format (uncompressed or
// compressed) determines the resulting address.
//
// Part of the Address interface.
func (a *AddressPubKey) Address() string {
	return encodeAddress(Hash160(a.serialize()), a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a public key.  Setting the public key format will affect the output of
// this function accordingly.  Part of the Address interface.
func (a *AddressPubKey) ScriptAddress() []byte {
	return a.serialize()
}

// Hash160 returns the Hash160 of the serialized public key.
func (a *AddressPubKey) Hash160() *[ripemd160.Size]byte {
	var hash [ripemd160.Size]byte
	copy(hash[:], Hash160(a.serialize()))
	return &hash
}

// String returns the hex-encoded human-readable string for the pay-to-pubkey
// address.  This is not the same as calling Address.
func (a *AddressPubKey) String() string {
	return fmt.Sprintf("%x", a.serialize())
}

// IsForNet returns whether the pay-to-pubkey address is associated with the
// passed network.
func (a *AddressPubKey) IsForNet(net AddressParams) bool {
	return a.netID == prefixByte(net, chaincfg.PubKeyAddress)
}

// AddressPubKeyHash returns the pay-to-pubkey address converted to a
// pay-to-pubkey-hash address.
func (a *AddressPubKey) AddressPubKeyHash() *AddressPubKeyHash {
	addr := &AddressPubKeyHash{netID: a.netID}
	copy(addr.hash[:], Hash160(a.serialize()))
	return addr
}

// PubKey returns the underlying public key for the address.
func (a *AddressPubKey) PubKey() *secp256k1.PublicKey {
	return a.pubKey
}
