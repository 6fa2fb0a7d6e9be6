// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"fmt"

	"github.com/blankcoin/blankd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// compressMagic is the byte appended to the private key of a WIF string whose
// public key is serialized in compressed form.
const compressMagic byte = 0x01

// WIF contains the individual components described by the Wallet Import Format
// (WIF).  A WIF string is typically used to represent a private key and its
// associated address in a way that may be easily copied and imported into or
// exported from wallet software.  WIF strings may be decoded into this
// structure by calling DecodeWIF or created with a user-provided private key
// by calling NewWIF.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *secp256k1.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool

	// netID is the network identifier byte used when WIF encoding the
	// private key.
	netID byte
}

// NewWIF creates a new WIF structure to export an address and its private key
// as a string encoded in the Wallet Import Format.  The compress argument
// specifies whether the address intended to be imported or exported was
// created by serializing the public key compressed rather than uncompressed.
func NewWIF(privKey *secp256k1.PrivateKey, net AddressParams, compress bool) *WIF {
	return &WIF{
		PrivKey:        privKey,
		CompressPubKey: compress,
		netID:          prefixByte(net, chaincfg.SecretKey),
	}
}

// IsForNet returns whether the WIF string is associated with the passed
// network.
func (w *WIF) IsForNet(net AddressParams) bool {
	return w.netID == prefixByte(net, chaincfg.SecretKey)
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format which is required to be for the provided network.
//
// The WIF string must be a base58-encoded string of the following byte
// sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - Optional 1 byte (equal to 0x01) if the address being imported or
//     exported was created by taking the RIPEMD160 after SHA256 hash of a
//     serialized compressed (33-byte) public key
//   - 4 bytes of checksum, must equal the first four bytes of the double
//     SHA256 of every byte before the checksum in this sequence
//
// If the base58-decoded byte sequence does not match this, DecodeWIF will
// return a non-nil error.  ErrMalformedPrivateKey is returned when the WIF is
// of an impossible length or the compression flag is invalid.
// ErrChecksumMismatch is returned if the expected WIF checksum does not match
// the calculated checksum.  ErrWrongNetwork is returned when the WIF belongs
// to another network.
func DecodeWIF(wif string, net AddressParams) (*WIF, error) {
	payload, version, err := CheckDecode(wif, 1)
	if err != nil {
		return nil, err
	}

	var compress bool
	switch len(payload) {
	case secp256k1.PrivKeyBytesLen + 1:
		if payload[secp256k1.PrivKeyBytesLen] != compressMagic {
			str := fmt.Sprintf("invalid compression flag %#02x",
				payload[secp256k1.PrivKeyBytesLen])
			return nil, makeError(ErrMalformedPrivateKey, str)
		}
		compress = true
	case secp256k1.PrivKeyBytesLen:
	default:
		str := fmt.Sprintf("private key payload is %d bytes", len(payload))
		return nil, makeError(ErrMalformedPrivateKey, str)
	}

	if want := prefixByte(net, chaincfg.SecretKey); version[0] != want {
		str := fmt.Sprintf("WIF version %d is not the network version %d",
			version[0], want)
		return nil, makeError(ErrWrongNetwork, str)
	}

	privKey := secp256k1.PrivKeyFromBytes(payload[:secp256k1.PrivKeyBytesLen])
	return &WIF{
		PrivKey:        privKey,
		CompressPubKey: compress,
		netID:          version[0],
	}, nil
}

// String creates the Wallet Import Format string encoding of a WIF structure.
// See DecodeWIF for a detailed breakdown of the format and requirements of
// a valid WIF string.
func (w *WIF) String() string {
	payload := w.PrivKey.Serialize()
	if w.CompressPubKey {
		payload = append(payload, compressMagic)
	}
	return CheckEncode(payload, []byte{w.netID})
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format.  The
// serialization format chosen depends on the value of w.CompressPubKey.
func (w *WIF) SerializePubKey() []byte {
	pk := w.PrivKey.PubKey()
	if w.CompressPubKey {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}
