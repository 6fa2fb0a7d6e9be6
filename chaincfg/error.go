// Copyright (c) 2019-2020 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrGenesisHashMismatch indicates the hash of a constructed genesis
	// block differs from the hard-coded hash of its network.
	ErrGenesisHashMismatch = ErrorKind("ErrGenesisHashMismatch")

	// ErrGenesisMerkleMismatch indicates the merkle root of a constructed
	// genesis block differs from the hard-coded merkle root of its network.
	ErrGenesisMerkleMismatch = ErrorKind("ErrGenesisMerkleMismatch")

	// ErrInvalidGenesis indicates a genesis template that cannot produce a
	// block, such as one missing its reward public key or with difficulty
	// bits outside of the network proof-of-work limit.
	ErrInvalidGenesis = ErrorKind("ErrInvalidGenesis")

	// ErrInvalidPowLimit indicates a network proof-of-work limit that is not
	// a positive 256-bit value.
	ErrInvalidPowLimit = ErrorKind("ErrInvalidPowLimit")

	// ErrInvalidDNSSeed indicates a DNS seed that is not a valid host name.
	ErrInvalidDNSSeed = ErrorKind("ErrInvalidDNSSeed")

	// ErrSeedTableLength indicates a compiled seed table whose length is not
	// a multiple of the seed record size.
	ErrSeedTableLength = ErrorKind("ErrSeedTableLength")

	// ErrUnknownNetwork indicates a network identifier that does not name
	// one of the supported networks.
	ErrUnknownNetwork = ErrorKind("ErrUnknownNetwork")

	// ErrConflictingNetworks indicates more than one network was requested
	// at the same time.
	ErrConflictingNetworks = ErrorKind("ErrConflictingNetworks")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to the construction or selection of
// network parameters.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// paramsError creates an Error given a set of arguments.
func paramsError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
