// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
)

// hashMerkleBranches concatenates the two passed hashes and returns the double
// sha256 of the result.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return DoubleHashH(buf[:])
}

// CalcMerkleRootFromHashes calculates the merkle root of the passed leaf
// hashes.  The slice is modified in place and must not be used afterwards.
//
// A level with an odd number of nodes pairs its final node with itself, so a
// tree of leaves [A B C] is computed as:
//
//	         root = h1234 = h(h12 + h33)
//	        /                           \
//	  h12 = h(h1 + h2)            h33 = h(h3 + h3)
//	   /            \              /            \
//	h1 = A        h2 = B        h3 = C        h3 = C
//
// The merkle root of no leaves is the zero hash.
func CalcMerkleRootFromHashes(hashes []chainhash.Hash) chainhash.Hash {
	if len(hashes) == 0 {
		return chainhash.Hash{}
	}

	for len(hashes) > 1 {
		// Duplicate the last hash when there is an odd number of nodes at
		// this level.
		if len(hashes)&1 != 0 {
			hashes = append(hashes, hashes[len(hashes)-1])
		}

		for i := 0; i < len(hashes)/2; i++ {
			hashes[i] = hashMerkleBranches(&hashes[i*2], &hashes[i*2+1])
		}
		hashes = hashes[:len(hashes)/2]
	}

	return hashes[0]
}

// CalcMerkleRoot calculates the merkle root of the passed transactions.
func CalcMerkleRoot(txns []*MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	leaves := make([]chainhash.Hash, 0, len(txns)+1)
	for _, tx := range txns {
		leaves = append(leaves, tx.TxHash())
	}
	return CalcMerkleRootFromHashes(leaves)
}
