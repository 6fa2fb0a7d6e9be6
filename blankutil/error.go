// Copyright (c) 2020 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFormat indicates a base58 string that does not decode to
	// a version prefix, a payload and a checksum.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrChecksumMismatch indicates a base58 string whose checksum does not
	// match its contents.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrUnknownAddressType indicates an address whose version prefix is
	// not an address prefix of the network.
	ErrUnknownAddressType = ErrorKind("ErrUnknownAddressType")

	// ErrInvalidHashLen indicates a hash160 that is not 20 bytes.
	ErrInvalidHashLen = ErrorKind("ErrInvalidHashLen")

	// ErrInvalidPubKey indicates bytes that are not a valid secp256k1
	// public key.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrMalformedPrivateKey indicates a WIF string of an impossible length
	// or with an invalid compression flag.
	ErrMalformedPrivateKey = ErrorKind("ErrMalformedPrivateKey")

	// ErrWrongNetwork indicates an encoded address or key intended for a
	// different network.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to encoding or decoding addresses and
// keys.  It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
