// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"time"

	"github.com/blankcoin/blankd/wire"
	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/txscript/v4"
)

// GenesisTemplate houses the literal inputs a genesis block is assembled from.
type GenesisTemplate struct {
	// Version is the block header version.
	Version int32

	// TimestampText is the text committed to by the coinbase signature
	// script.
	TimestampText string

	// ExtraNonce is the number pushed between OP_0 and the timestamp text in
	// the coinbase signature script.
	ExtraNonce int64

	// RewardPubKey is the serialized public key paid by the coinbase output.
	RewardPubKey []byte

	// Reward is the value of the coinbase output.
	Reward int64

	// TxTime is the creation time of the coinbase transaction.
	TxTime time.Time

	// BlockTime is the header timestamp.
	BlockTime time.Time

	// Nonce and Bits are the header proof-of-work fields.
	Nonce uint32
	Bits  uint32
}

// genesisSigScript returns the coinbase signature script committing to the
// timestamp text.
func genesisSigScript(tmpl *GenesisTemplate) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(tmpl.ExtraNonce).
		AddData([]byte(tmpl.TimestampText)).
		Script()
}

// genesisPkScript returns the pay-to-pubkey script of the coinbase output.
func genesisPkScript(tmpl *GenesisTemplate) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(tmpl.RewardPubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// BuildGenesisBlock assembles the single transaction genesis block described
// by the passed template.  The header merkle root commits to the coinbase
// transaction.  It never searches for a nonce; the template nonce is used as
// is.
func BuildGenesisBlock(tmpl *GenesisTemplate) (*wire.MsgBlock, error) {
	if _, err := secp256k1.ParsePubKey(tmpl.RewardPubKey); err != nil {
		str := fmt.Sprintf("genesis reward public key %x is invalid: %v",
			tmpl.RewardPubKey, err)
		return nil, paramsError(ErrInvalidGenesis, str)
	}
	if tmpl.Reward < 0 {
		str := fmt.Sprintf("genesis reward %d is negative", tmpl.Reward)
		return nil, paramsError(ErrInvalidGenesis, str)
	}

	sigScript, err := genesisSigScript(tmpl)
	if err != nil {
		str := fmt.Sprintf("unable to build genesis signature script: %v",
			err)
		return nil, paramsError(ErrInvalidGenesis, str)
	}
	pkScript, err := genesisPkScript(tmpl)
	if err != nil {
		str := fmt.Sprintf("unable to build genesis output script: %v", err)
		return nil, paramsError(ErrInvalidGenesis, str)
	}

	coinbase := &wire.MsgTx{
		Version:   1,
		Timestamp: tmpl.TxTime,
		TxIn: []*wire.TxIn{{
			// Fully null.
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: wire.MaxPrevOutIndex,
			},
			SignatureScript: sigScript,
			Sequence:        wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{
			Value:    tmpl.Reward,
			PkScript: pkScript,
		}},
		LockTime: 0,
	}

	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:   tmpl.Version,
			PrevBlock: chainhash.Hash{}, // All zero.
			// MerkleRoot: Calculated below.
			Timestamp: tmpl.BlockTime,
			Bits:      tmpl.Bits,
			Nonce:     tmpl.Nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
	block.Header.MerkleRoot = wire.CalcMerkleRoot(block.Transactions)
	return block, nil
}

// verifyGenesis recomputes the merkle root and hash of the passed genesis block
// and ensures they match the hard-coded values of its network.
func verifyGenesis(block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) error {
	merkle := wire.CalcMerkleRoot(block.Transactions)
	if merkle != *wantMerkle || block.Header.MerkleRoot != *wantMerkle {
		str := fmt.Sprintf("genesis merkle root %v does not match expected "+
			"%v", merkle, wantMerkle)
		return paramsError(ErrGenesisMerkleMismatch, str)
	}

	hash := block.BlockHash()
	if hash != *wantHash {
		str := fmt.Sprintf("genesis block hash %v does not match expected %v",
			hash, wantHash)
		return paramsError(ErrGenesisHashMismatch, str)
	}
	return nil
}

// checkGenesisBits ensures the genesis difficulty bits are within the network
// proof-of-work limit.
func checkGenesisBits(block *wire.MsgBlock, powLimit *big.Int) error {
	err := standalone.CheckProofOfWorkRange(block.Header.Bits, powLimit)
	if err != nil {
		str := fmt.Sprintf("genesis difficulty bits %08x are out of range: "+
			"%v", block.Header.Bits, err)
		return paramsError(ErrInvalidGenesis, str)
	}
	return nil
}
