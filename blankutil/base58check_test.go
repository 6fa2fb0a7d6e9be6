// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"bytes"
	"errors"
	"testing"
)

// TestBase58Check ensures payloads round trip through CheckEncode and
// CheckDecode with version prefixes of different lengths.
func TestBase58Check(t *testing.T) {
	tests := []struct {
		version []byte
		payload []byte
	}{
		{[]byte{20}, []byte("")},
		{[]byte{20}, []byte(" ")},
		{[]byte{25}, []byte("-")},
		{[]byte{0}, []byte("0")},
		{[]byte{239}, []byte("1")},
		{[]byte{0x04, 0x88, 0xb2, 0x1e}, []byte("1234598760")},
		{[]byte{0x04, 0x35, 0x83, 0x94}, []byte("abcdefghijklmnopqrstuvwxyz")},
		{[]byte{0}, []byte("00000000000000000000000000000000000000000000000000000000000000")},
	}

	for i, test := range tests {
		encoded := CheckEncode(test.payload, test.version)
		payload, version, err := CheckDecode(encoded, len(test.version))
		if err != nil {
			t.Errorf("#%d: CheckDecode(%q): unexpected error: %v", i,
				encoded, err)
			continue
		}
		if !bytes.Equal(version, test.version) {
			t.Errorf("#%d: version mismatch -- got %x, want %x", i, version,
				test.version)
		}
		if !bytes.Equal(payload, test.payload) {
			t.Errorf("#%d: payload mismatch -- got %x, want %x", i, payload,
				test.payload)
		}
	}
}

// TestBase58CheckErrors ensures malformed base58check strings are rejected
// with the expected error kind.
func TestBase58CheckErrors(t *testing.T) {
	valid := CheckEncode([]byte("payload"), []byte{25})
	corrupt := []byte(valid)
	if corrupt[len(corrupt)-1] == 'z' {
		corrupt[len(corrupt)-1] = 'y'
	} else {
		corrupt[len(corrupt)-1] = 'z'
	}

	tests := []struct {
		name       string
		in         string
		versionLen int
		err        error
	}{
		{"empty", "", 1, ErrInvalidFormat},
		{"too short", "3MNQE1X", 4, ErrInvalidFormat},
		{"invalid character", "0OIl", 1, ErrInvalidFormat},
		{"corrupted checksum", string(corrupt), 1, ErrChecksumMismatch},
	}

	for _, test := range tests {
		_, _, err := CheckDecode(test.in, test.versionLen)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.err)
		}
	}
}
