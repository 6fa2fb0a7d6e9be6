// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// genesisBlock is the main network genesis block.
var genesisBlock = MsgBlock{
	Header:       genesisHeader,
	Transactions: []*MsgTx{&genesisCoinbaseTx},
}

// genesisBlockEncoded returns the wire encoded bytes for genesisBlock.  Blocks
// serialize as the header, the transactions and a trailing signature, which is
// empty for the genesis block.
func genesisBlockEncoded() []byte {
	b := make([]byte, 0, len(genesisHeaderEncoded)+
		len(genesisCoinbaseTxEncoded)+2)
	b = append(b, genesisHeaderEncoded...)
	b = append(b, 0x01) // Varint for number of transactions
	b = append(b, genesisCoinbaseTxEncoded...)
	b = append(b, 0x00) // Varint for signature length
	return b
}

// TestBlock tests the MsgBlock API.
func TestBlock(t *testing.T) {
	msg := NewMsgBlock(&genesisHeader)
	if !reflect.DeepEqual(&msg.Header, &genesisHeader) {
		t.Errorf("NewMsgBlock: wrong header - got %v, want %v",
			spew.Sdump(&msg.Header), spew.Sdump(&genesisHeader))
	}

	// Ensure transactions are added properly.
	tx := genesisCoinbaseTx.Copy()
	msg.AddTransaction(tx)
	if !reflect.DeepEqual(msg.Transactions, []*MsgTx{tx}) {
		t.Errorf("AddTransaction: wrong transactions - got %v, want %v",
			spew.Sdump(msg.Transactions), spew.Sdump([]*MsgTx{tx}))
	}

	// Ensure the transaction hashes are reported in order.
	hashes := msg.TxHashes()
	if len(hashes) != 1 || hashes[0] != genesisHeader.MerkleRoot {
		t.Errorf("TxHashes: unexpected hashes %v", hashes)
	}

	// Ensure the block hash is the header hash.
	if msg.BlockHash() != genesisHeader.BlockHash() {
		t.Errorf("BlockHash: got %v, want %v", msg.BlockHash(),
			genesisHeader.BlockHash())
	}

	// Ensure transactions are properly cleared.
	msg.ClearTransactions()
	if len(msg.Transactions) != 0 {
		t.Errorf("ClearTransactions: wrong transactions - got %v, want %v",
			len(msg.Transactions), 0)
	}
}

// TestBlockWire tests the MsgBlock wire encode and decode.
func TestBlockWire(t *testing.T) {
	signed := genesisBlock
	signed.Signature = []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01}
	signedEncoded := append(genesisBlockEncoded()[:len(genesisBlockEncoded())-1],
		0x08, 0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01)

	tests := []struct {
		name string
		in   *MsgBlock
		buf  []byte
	}{
		{"unsigned genesis", &genesisBlock, genesisBlockEncoded()},
		{"signed", &signed, signedEncoded},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		if err := test.in.Serialize(&buf); err != nil {
			t.Errorf("%s: Serialize error %v", test.name, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("%s: Serialize\n got: %s want: %s", test.name,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}
		if size := test.in.SerializeSize(); size != len(test.buf) {
			t.Errorf("%s: SerializeSize got %d, want %d", test.name, size,
				len(test.buf))
			continue
		}

		var msg MsgBlock
		if err := msg.Deserialize(bytes.NewReader(test.buf)); err != nil {
			t.Errorf("%s: Deserialize error %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(&msg, test.in) {
			t.Errorf("%s: Deserialize\n got: %s want: %s", test.name,
				spew.Sdump(&msg), spew.Sdump(test.in))
			continue
		}
	}
}

// TestBlockWireErrors performs negative tests against wire encode and decode
// of MsgBlock to confirm error paths work correctly.
func TestBlockWireErrors(t *testing.T) {
	encoded := genesisBlockEncoded()
	tests := []struct {
		max      int   // Max size of fixed buffer to induce errors
		writeErr error // Expected write error
		readErr  error // Expected read error
	}{
		// Force error in header.
		{0, io.ErrShortWrite, io.EOF},
		// Force error in transaction count.
		{80, io.ErrShortWrite, io.EOF},
		// Force error in transaction.
		{81, io.ErrShortWrite, io.EOF},
		// Force error in signature.
		{248, io.ErrShortWrite, io.EOF},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		w := newFixedWriter(test.max)
		err := genesisBlock.Serialize(w)
		if !errors.Is(err, test.writeErr) {
			t.Errorf("Serialize #%d wrong error got: %v, want: %v", i,
				err, test.writeErr)
			continue
		}

		var msg MsgBlock
		r := newFixedReader(test.max, encoded)
		err = msg.Deserialize(r)
		if !errors.Is(err, test.readErr) {
			t.Errorf("Deserialize #%d wrong error got: %v, want: %v", i,
				err, test.readErr)
			continue
		}
	}
}

// TestBlockOverflowErrors ensures blocks claiming an impossible number of
// transactions, and blocks too large to relay, are rejected.
func TestBlockOverflowErrors(t *testing.T) {
	buf := append([]byte{}, genesisHeaderEncoded...)
	buf = append(buf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	var msg MsgBlock
	err := msg.Deserialize(bytes.NewReader(buf))
	if !errors.Is(err, ErrTooManyTxs) {
		t.Fatalf("Deserialize: wrong error got: %v, want: %v", err,
			ErrTooManyTxs)
	}

	big := genesisBlock
	bigTx := genesisCoinbaseTx.Copy()
	bigTx.TxOut[0].PkScript = make([]byte, MaxBlockPayload)
	big.Transactions = []*MsgTx{bigTx}
	err = big.Serialize(io.Discard)
	if !errors.Is(err, ErrBlockTooBig) {
		t.Fatalf("Serialize: wrong error got: %v, want: %v", err,
			ErrBlockTooBig)
	}
}
