// Copyright (c) 2019-2020 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"io"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrGenesisHashMismatch, "ErrGenesisHashMismatch"},
		{ErrGenesisMerkleMismatch, "ErrGenesisMerkleMismatch"},
		{ErrInvalidGenesis, "ErrInvalidGenesis"},
		{ErrInvalidPowLimit, "ErrInvalidPowLimit"},
		{ErrInvalidDNSSeed, "ErrInvalidDNSSeed"},
		{ErrSeedTableLength, "ErrSeedTableLength"},
		{ErrUnknownNetwork, "ErrUnknownNetwork"},
		{ErrConflictingNetworks, "ErrConflictingNetworks"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrUnknownNetwork == ErrUnknownNetwork",
		err:       ErrUnknownNetwork,
		target:    ErrUnknownNetwork,
		wantMatch: true,
		wantAs:    ErrUnknownNetwork,
	}, {
		name:      "Error.ErrGenesisHashMismatch == ErrGenesisHashMismatch",
		err:       paramsError(ErrGenesisHashMismatch, ""),
		target:    ErrGenesisHashMismatch,
		wantMatch: true,
		wantAs:    ErrGenesisHashMismatch,
	}, {
		name:      "Error.ErrGenesisHashMismatch != ErrGenesisMerkleMismatch",
		err:       paramsError(ErrGenesisHashMismatch, ""),
		target:    ErrGenesisMerkleMismatch,
		wantMatch: false,
		wantAs:    ErrGenesisHashMismatch,
	}, {
		name:      "Error.ErrConflictingNetworks != io.EOF",
		err:       paramsError(ErrConflictingNetworks, ""),
		target:    io.EOF,
		wantMatch: false,
		wantAs:    ErrConflictingNetworks,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
