// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package alert

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidAlertKey indicates an alert public key that is not a valid
	// secp256k1 public key.
	ErrInvalidAlertKey = ErrorKind("ErrInvalidAlertKey")

	// ErrInvalidSignature indicates an alert signature that does not parse
	// or does not verify under the alert key.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrMalformedAlert indicates a signed alert whose payload does not
	// decode to exactly one alert.
	ErrMalformedAlert = ErrorKind("ErrMalformedAlert")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to signing and verifying alerts.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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

// alertError creates an Error given a set of arguments.
func alertError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
