// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.  A coinbase input references it with a zero hash.
	MaxPrevOutIndex uint32 = 0xffffffff

	// defaultTxInOutAlloc is the default size used for the backing array for
	// transaction inputs and outputs.  The array will dynamically grow as
	// needed, but this figure is intended to provide enough space for the
	// number of inputs and outputs in a typical transaction without needing
	// to grow the backing array multiple times.
	defaultTxInOutAlloc = 15

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerMessage is the maximum number of transaction inputs that a
	// transaction which fits into a block could possibly have.
	maxTxInPerMessage = (MaxBlockPayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerMessage is the maximum number of transaction outputs that a
	// transaction which fits into a block could possibly have.
	maxTxOutPerMessage = (MaxBlockPayload / minTxOutPayload) + 1

	// minTxPayload is the minimum payload size for a transaction.  Note
	// that any realistically usable transaction must have at least one
	// input or output, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	// Version 4 bytes + Timestamp 4 bytes + Varint number of transaction
	// inputs 1 byte + Varint number of transaction outputs 1 byte +
	// LockTime 4 bytes.
	minTxPayload = 14

	// maxScriptSize is the largest script accepted when decoding.
	maxScriptSize = MaxBlockPayload
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided hash
// and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits.  Although
	// at the time of writing, the number of digits can be no greater than
	// the length of the decimal representation of maxTxOutPerMessage, the
	// maximum message payload may increase in the future and this
	// optimization may go unnoticed, so allocate space for 10 decimal
	// digits, which will fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided previous outpoint
// point and signature script with a default sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided transaction
// value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements a Blankcoin transaction.  Unlike Bitcoin transactions, each
// transaction commits to its own creation time, which is serialized directly
// after the version.
type MsgTx struct {
	Version   int32
	Timestamp time.Time
	TxIn      []*TxIn
	TxOut     []*TxOut
	LockTime  uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not the transaction is a coinbase.  A
// coinbase is a special transaction created by miners that has no inputs.
// This is represented in the block chain by a transaction with a single input
// that has a previous output transaction index set to the maximum value along
// with a zero hash.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}

	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == MaxPrevOutIndex && prevOut.Hash == chainhash.Hash{}
}

// TxHash generates the hash for the transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	// Serialize the transaction and calculate its double sha256 hash.
	// Ignore the error returns since the only way the encode could fail
	// is being out of memory or due to nil pointers, both of which would
	// cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return DoubleHashH(buf.Bytes())
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:   msg.Version,
		Timestamp: msg.Timestamp,
		TxIn:      make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:     make([]*TxOut, 0, len(msg.TxOut)),
		LockTime:  msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		var newScript []byte
		if oldTxIn.SignatureScript != nil {
			newScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newScript, oldTxIn.SignatureScript)
		}
		newTx.TxIn = append(newTx.TxIn, &TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		})
	}

	for _, oldTxOut := range msg.TxOut {
		var newScript []byte
		if oldTxOut.PkScript != nil {
			newScript = make([]byte, len(oldTxOut.PkScript))
			copy(newScript, oldTxOut.PkScript)
		}
		newTx.TxOut = append(newTx.TxOut, &TxOut{
			Value:    oldTxOut.Value,
			PkScript: newScript,
		})
	}

	return &newTx
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	const op = "MsgTx.Deserialize"

	var ts uint32Time
	if err := readElements(r, &msg.Version, &ts); err != nil {
		return err
	}
	msg.Timestamp = time.Time(ts)

	count, err := readVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxInPerMessage {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count,
			maxTxInPerMessage)
		return messageError(op, ErrTooManyTxIns, str)
	}
	msg.TxIn = make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		var ti TxIn
		err := readElements(r, &ti.PreviousOutPoint.Hash,
			&ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		ti.SignatureScript, err = readScript(r, maxScriptSize,
			"transaction input signature script")
		if err != nil {
			return err
		}
		if err := readElement(r, &ti.Sequence); err != nil {
			return err
		}
		msg.TxIn = append(msg.TxIn, &ti)
	}

	count, err = readVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxOutPerMessage {
		str := fmt.Sprintf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", count,
			maxTxOutPerMessage)
		return messageError(op, ErrTooManyTxOuts, str)
	}
	msg.TxOut = make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		var to TxOut
		if err := readElement(r, &to.Value); err != nil {
			return err
		}
		to.PkScript, err = readScript(r, maxScriptSize,
			"transaction output public key script")
		if err != nil {
			return err
		}
		msg.TxOut = append(msg.TxOut, &to)
	}

	return readElement(r, &msg.LockTime)
}

// Serialize encodes the transaction to w in the format used both on the wire
// and for computing the transaction hash.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := writeElements(w, msg.Version, uint32Time(msg.Timestamp))
	if err != nil {
		return err
	}

	if err := writeVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err := writeElements(w, &ti.PreviousOutPoint.Hash,
			ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		if err := writeScript(w, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}

	if err := writeVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, to.Value); err != nil {
			return err
		}
		if err := writeScript(w, to.PkScript); err != nil {
			return err
		}
	}

	return writeElement(w, msg.LockTime)
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Timestamp 4 bytes + LockTime 4 bytes + Serialized
	// varint size for the number of transaction inputs and outputs.
	n := 12 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}

	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	return n
}

// NewMsgTx returns a new transaction message that conforms to the Message
// interface.  The return instance has a default version of TxVersion, a
// timestamp of the current time truncated to one second precision, and there
// are no transaction inputs or outputs.
func NewMsgTx() *MsgTx {
	return &MsgTx{
		Version:   TxVersion,
		Timestamp: time.Unix(time.Now().Unix(), 0),
		TxIn:      make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:     make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}
