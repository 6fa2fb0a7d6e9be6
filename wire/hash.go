// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"crypto/sha256"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"golang.org/x/crypto/scrypt"
)

// Scrypt cost parameters of the proof-of-work hash.
const (
	scryptN = 1024
	scryptR = 1
	scryptP = 1
)

// DoubleHashB calculates sha256(sha256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates sha256(sha256(b)) and returns the resulting bytes as
// a chainhash.Hash.
func DoubleHashH(b []byte) chainhash.Hash {
	first := sha256.Sum256(b)
	return chainhash.Hash(sha256.Sum256(first[:]))
}

// ScryptHash calculates the scrypt proof-of-work hash of b, using b as both
// the password and the salt.
func ScryptHash(b []byte) chainhash.Hash {
	out, err := scrypt.Key(b, b, scryptN, scryptR, scryptP, chainhash.HashSize)
	if err != nil {
		// Only reachable with invalid cost parameters, which are constant.
		panic(err)
	}
	var hash chainhash.Hash
	copy(hash[:], out)
	return hash
}
