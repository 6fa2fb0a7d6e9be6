// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrTooManyTxs is returned when the number of transactions in a block
	// exceeds the maximum allowed.
	ErrTooManyTxs = ErrorKind("ErrTooManyTxs")

	// ErrTooManyTxIns is returned when the number of inputs in a
	// transaction exceeds the maximum allowed.
	ErrTooManyTxIns = ErrorKind("ErrTooManyTxIns")

	// ErrTooManyTxOuts is returned when the number of outputs in a
	// transaction exceeds the maximum allowed.
	ErrTooManyTxOuts = ErrorKind("ErrTooManyTxOuts")

	// ErrBlockTooBig is returned when a serialized block exceeds the
	// maximum block payload.
	ErrBlockTooBig = ErrorKind("ErrBlockTooBig")

	// ErrTooManyAlertEntries is returned when an alert lists more cancelled
	// alerts or client versions than allowed.
	ErrTooManyAlertEntries = ErrorKind("ErrTooManyAlertEntries")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// MessageError identifies an error related to the encoding of blocks and
// transactions. It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type MessageError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e MessageError) Error() string {
	if e.Func != "" {
		return e.Func + ": " + e.Description
	}
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e MessageError) Unwrap() error {
	return e.Err
}

// messageError creates a MessageError given a set of arguments.
func messageError(fn string, kind ErrorKind, desc string) MessageError {
	return MessageError{Func: fn, Err: kind, Description: desc}
}
