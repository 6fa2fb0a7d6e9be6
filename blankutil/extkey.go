// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"bytes"
	"fmt"

	"github.com/blankcoin/blankd/chaincfg"
)

// serializedKeyLen is the length of a serialized public or private extended
// key without its version prefix.  It consists of 1 byte depth, 4 bytes
// parent fingerprint, 4 bytes child number, 32 bytes chain code, and 33 bytes
// public or private key data.
const serializedKeyLen = 1 + 4 + 4 + 32 + 33

// ExtendedKeyNetwork reports whether the passed base58 encoded extended key
// carries the extended public or private key version of the network.  The
// key material itself is not validated.
func ExtendedKeyNetwork(key string, net AddressParams) (private bool, err error) {
	payload, version, err := CheckDecode(key, 4)
	if err != nil {
		return false, err
	}
	if len(payload) != serializedKeyLen {
		str := fmt.Sprintf("extended key payload is %d bytes instead of %d",
			len(payload), serializedKeyLen)
		return false, makeError(ErrInvalidFormat, str)
	}

	switch {
	case bytes.Equal(version, net.Base58Prefix(chaincfg.ExtPublicKey)):
		return false, nil
	case bytes.Equal(version, net.Base58Prefix(chaincfg.ExtSecretKey)):
		return true, nil
	}

	str := fmt.Sprintf("extended key version %x is not a version of the "+
		"network", version)
	return false, makeError(ErrWrongNetwork, str)
}
