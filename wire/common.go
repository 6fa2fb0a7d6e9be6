// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	dcrwire "github.com/decred/dcrd/wire"
)

// codecPver is the protocol version handed to the shared variable length
// integer and byte slice codecs.  Their encoding does not vary by protocol
// version.
const codecPver = 0

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// uint32Time represents a unix timestamp encoded with a uint32.  It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(b[:]))
		return nil

	case *uint32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(b[:])
		return nil

	case *int64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(b[:]))
		return nil

	// Unix timestamp encoded as a uint32.
	case *uint32Time:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(littleEndian.Uint32(b[:])), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return fmt.Errorf("readElement: unsupported type %T", element)
}

// readElements reads multiple items from r.  It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		if err := readElement(r, element); err != nil {
			return err
		}
	}
	return nil
}

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		var b [4]byte
		littleEndian.PutUint32(b[:], uint32(e))
		_, err := w.Write(b[:])
		return err

	case uint32:
		var b [4]byte
		littleEndian.PutUint32(b[:], e)
		_, err := w.Write(b[:])
		return err

	case int64:
		var b [8]byte
		littleEndian.PutUint64(b[:], uint64(e))
		_, err := w.Write(b[:])
		return err

	// Unix timestamp encoded as a uint32.
	case uint32Time:
		var b [4]byte
		littleEndian.PutUint32(b[:], uint32(time.Time(e).Unix()))
		_, err := w.Write(b[:])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	}

	return fmt.Errorf("writeElement: unsupported type %T", element)
}

// writeElements writes multiple items to w.  It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		if err := writeElement(w, element); err != nil {
			return err
		}
	}
	return nil
}

// readVarInt reads a canonically encoded variable length integer.
func readVarInt(r io.Reader) (uint64, error) {
	return dcrwire.ReadVarInt(r, codecPver)
}

// writeVarInt serializes val to w using the compact size encoding.
func writeVarInt(w io.Writer, val uint64) error {
	return dcrwire.WriteVarInt(w, codecPver, val)
}

// readScript reads a variable length script from r, rejecting scripts longer
// than maxAllowed bytes.
func readScript(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	return dcrwire.ReadVarBytes(r, codecPver, maxAllowed, fieldName)
}

// writeScript writes a variable length script to w.
func writeScript(w io.Writer, script []byte) error {
	return dcrwire.WriteVarBytes(w, codecPver, script)
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	return dcrwire.VarIntSerializeSize(val)
}
