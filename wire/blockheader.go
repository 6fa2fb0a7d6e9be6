// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can be.
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp 4
// bytes + Bits 4 bytes + Nonce 4 bytes.
const MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// scryptHashMaxVersion is the highest block version whose identifying hash is
// the scrypt hash of the header.  Later versions are identified by the double
// sha256 of the header.
const scryptHashMaxVersion = 6

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) message.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
// Headers with a version up to scryptHashMaxVersion are identified by their
// scrypt hash, which is also their proof-of-work hash.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	if h.Version <= scryptHashMaxVersion {
		return ScryptHash(h.Bytes())
	}
	return DoubleHashH(h.Bytes())
}

// PowHash returns the scrypt hash of the header that is compared against the
// difficulty target.
func (h *BlockHeader) PowHash() chainhash.Hash {
	return ScryptHash(h.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var ts uint32Time
	err := readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot, &ts,
		&h.Bits, &h.Nonce)
	if err != nil {
		return err
	}
	h.Timestamp = time.Time(ts)
	return nil
}

// Serialize encodes a block header from r into the receiver.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot,
		uint32Time(h.Timestamp), h.Bits, h.Nonce)
}

// Bytes returns a byte slice containing the serialized contents of the block
// header.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	// Writes to a bytes.Buffer cannot fail.
	_ = h.Serialize(buf)
	return buf.Bytes()
}

// NewBlockHeader returns a new BlockHeader using the provided version, previous
// block hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}
