// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package alert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/blankcoin/blankd/chaincfg"
	"github.com/blankcoin/blankd/wire"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	dcrwire "github.com/decred/dcrd/wire"
)

const (
	// maxPayloadSize is the largest serialized alert accepted when decoding.
	maxPayloadSize = 4096

	// maxSignatureSize is the largest DER signature accepted when decoding.
	maxSignatureSize = 80
)

// SignedAlert is a serialized alert together with the signature of its network
// alert key over the double sha256 of the serialization.
type SignedAlert struct {
	Payload   []byte
	Signature []byte
}

// Sign serializes the alert and signs it with the passed alert private key.
func Sign(a *wire.Alert, key *secp256k1.PrivateKey) (*SignedAlert, error) {
	payload, err := a.Bytes()
	if err != nil {
		return nil, err
	}

	return &SignedAlert{Payload: payload, Signature: signPayload(key, payload)}, nil
}

// signPayload returns the DER encoded signature of the double sha256 of the
// serialized alert.
func signPayload(key *secp256k1.PrivateKey, payload []byte) []byte {
	return ecdsa.Sign(key, wire.DoubleHashB(payload)).Serialize()
}

// Verify checks the signature against the passed serialized alert public key
// and returns the decoded alert when it is valid.
func (s *SignedAlert) Verify(alertPubKey []byte) (*wire.Alert, error) {
	pubKey, err := secp256k1.ParsePubKey(alertPubKey)
	if err != nil {
		str := fmt.Sprintf("invalid alert public key: %v", err)
		return nil, alertError(ErrInvalidAlertKey, str)
	}

	sig, err := ecdsa.ParseDERSignature(s.Signature)
	if err != nil {
		str := fmt.Sprintf("malformed alert signature: %v", err)
		return nil, alertError(ErrInvalidSignature, str)
	}
	if !sig.Verify(wire.DoubleHashB(s.Payload), pubKey) {
		log.Debugf("Rejected alert signed by a key other than %x",
			alertPubKey)
		return nil, alertError(ErrInvalidSignature,
			"alert signature does not verify under the alert key")
	}

	var a wire.Alert
	r := bytes.NewReader(s.Payload)
	if err := a.Deserialize(r); err != nil {
		str := fmt.Sprintf("undecodable alert payload: %v", err)
		return nil, alertError(ErrMalformedAlert, str)
	}
	if r.Len() != 0 {
		str := fmt.Sprintf("alert payload has %d trailing bytes", r.Len())
		return nil, alertError(ErrMalformedAlert, str)
	}
	return &a, nil
}

// VerifyForNet verifies the alert against the alert key of the passed
// network.
func (s *SignedAlert) VerifyForNet(params *chaincfg.Params) (*wire.Alert, error) {
	a, err := s.Verify(params.AlertPubKey)
	if err != nil {
		return nil, err
	}
	log.Debugf("Verified %s alert %d", params.Name, a.ID)
	return a, nil
}

// Serialize encodes the signed alert to w as the variable length payload
// followed by the variable length signature.
func (s *SignedAlert) Serialize(w io.Writer) error {
	if err := dcrwire.WriteVarBytes(w, 0, s.Payload); err != nil {
		return err
	}
	return dcrwire.WriteVarBytes(w, 0, s.Signature)
}

// Deserialize decodes a signed alert from r into the receiver.  It does not
// verify the signature.
func (s *SignedAlert) Deserialize(r io.Reader) error {
	payload, err := dcrwire.ReadVarBytes(r, 0, maxPayloadSize, "alert payload")
	if err != nil {
		return err
	}
	sig, err := dcrwire.ReadVarBytes(r, 0, maxSignatureSize, "alert signature")
	if err != nil {
		return err
	}
	s.Payload, s.Signature = payload, sig
	return nil
}
