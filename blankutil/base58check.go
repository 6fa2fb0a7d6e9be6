// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"bytes"
	"fmt"

	"github.com/blankcoin/blankd/wire"
	"github.com/decred/base58"
)

// checksumLen is the number of double sha256 bytes appended to a base58check
// payload.
const checksumLen = 4

// checksum returns the first four bytes of the double sha256 of the input.
func checksum(input []byte) [checksumLen]byte {
	var cksum [checksumLen]byte
	copy(cksum[:], wire.DoubleHashB(input))
	return cksum
}

// CheckEncode prepends the version prefix and appends a four byte checksum
// to the payload and returns the base58 encoding of the result.
func CheckEncode(payload, version []byte) string {
	b := make([]byte, 0, len(version)+len(payload)+checksumLen)
	b = append(b, version...)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// CheckDecode decodes a base58check string with a version prefix of
// versionLen bytes.  It returns the payload and the version prefix.
func CheckDecode(s string, versionLen int) (payload, version []byte, err error) {
	decoded := base58.Decode(s)
	if len(decoded) < versionLen+checksumLen || (len(s) > 0 && len(decoded) == 0) {
		str := fmt.Sprintf("base58check string of %d bytes can't hold a "+
			"%d byte version and checksum", len(decoded), versionLen)
		return nil, nil, makeError(ErrInvalidFormat, str)
	}

	body := decoded[:len(decoded)-checksumLen]
	cksum := checksum(body)
	if !bytes.Equal(cksum[:], decoded[len(decoded)-checksumLen:]) {
		return nil, nil, makeError(ErrChecksumMismatch, "checksum mismatch")
	}
	return body[versionLen:], body[:versionLen], nil
}
