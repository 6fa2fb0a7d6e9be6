// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the Blankcoin block and transaction encoding.

Blankcoin descends from Blackcoin, so its transactions and blocks follow the
Bitcoin layout with two proof-of-stake additions:

  - Every transaction commits to a creation time which is serialized as a
    uint32 directly after the transaction version.
  - Every block carries a trailing signature by the staker.  Proof-of-work
    blocks, such as the genesis block, carry an empty signature.

Block Hashes

Block headers up to version 6 are identified by the scrypt (N=1024, r=1, p=1)
hash of the serialized header, which is also the proof-of-work hash.  Later
header versions are identified by the double sha256 of the header instead.
Transaction hashes and merkle trees always use double sha256.

Like all chain hashes, the hashes returned by this package hold the raw digest
bytes.  Their String method prints them byte-reversed, which is the form used
by block explorers and RPC output.

Errors

Errors returned by this package are either the raw errors provided by
underlying calls to read/write from streams such as io.EOF,
io.ErrUnexpectedEOF, and io.ErrShortWrite, or of type wire.MessageError.  This
allows the caller to differentiate between general IO errors and malformed
messages through type assertions.  Malformed messages can be matched against
their ErrorKind with errors.Is.
*/
package wire
