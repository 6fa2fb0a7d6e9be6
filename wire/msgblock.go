// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// defaultTransactionAlloc is the default size used for the backing array
// for transactions.  The array will dynamically grow as needed, but this
// figure is intended to provide enough space for the number of transactions
// in the vast majority of blocks without needing to grow the backing array
// multiple times.
const defaultTransactionAlloc = 2048

// MaxBlockPayload is the maximum bytes a block message can be in bytes.
const MaxBlockPayload = 1000000

// MaxBlockSignatureSize is the largest block signature accepted when decoding.
// DER encoded secp256k1 signatures never exceed 72 bytes.
const MaxBlockSignatureSize = 80

// maxTxPerBlock is the maximum number of transactions that could
// possibly fit into a block.
const maxTxPerBlock = (MaxBlockPayload / minTxPayload) + 1

// MsgBlock implements a Blankcoin block.  Proof-of-stake blocks are signed by
// the staker, so the serialized block carries a trailing signature which is
// empty for proof-of-work blocks such as the genesis block.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	Signature    []byte
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	const op = "MsgBlock.Deserialize"

	if err := msg.Header.Deserialize(r); err != nil {
		return err
	}

	txCount, err := readVarInt(r)
	if err != nil {
		return err
	}

	// Prevent more transactions than could possibly fit into a block.
	// It would be possible to cause memory exhaustion and panics without
	// a sane upper bound on this count.
	if txCount > maxTxPerBlock {
		str := fmt.Sprintf("too many transactions to fit into a block "+
			"[count %d, max %d]", txCount, maxTxPerBlock)
		return messageError(op, ErrTooManyTxs, str)
	}

	msg.Transactions = make([]*MsgTx, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		var tx MsgTx
		if err := tx.Deserialize(r); err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	sig, err := readScript(r, MaxBlockSignatureSize, "block signature")
	if err != nil {
		return err
	}

	// Proof-of-work blocks are unsigned.
	msg.Signature = nil
	if len(sig) > 0 {
		msg.Signature = sig
	}
	return nil
}

// Serialize encodes the block to w in the format used on the wire.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	const op = "MsgBlock.Serialize"

	if size := msg.SerializeSize(); size > MaxBlockPayload {
		str := fmt.Sprintf("serialized block is too big [size %d, max %d]",
			size, MaxBlockPayload)
		return messageError(op, ErrBlockTooBig, str)
	}

	if err := msg.Header.Serialize(w); err != nil {
		return err
	}

	if err := writeVarInt(w, uint64(len(msg.Transactions))); err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}

	return writeScript(w, msg.Signature)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	// Block header bytes + Serialized varint size for the number of
	// transactions + Serialized varint size and bytes of the signature.
	n := MaxBlockHeaderPayload +
		VarIntSerializeSize(uint64(len(msg.Transactions))) +
		VarIntSerializeSize(uint64(len(msg.Signature))) + len(msg.Signature)

	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}

	return n
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns a slice of hashes of all of transactions in this block.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashList := make([]chainhash.Hash, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		hashList = append(hashList, tx.TxHash())
	}
	return hashList
}

// NewMsgBlock returns a new block message that conforms to the Message
// interface.  See MsgBlock for details.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}
