// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package alert

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/blankcoin/blankd/chaincfg"
	"github.com/blankcoin/blankd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// testAlert is the alert signed throughout the tests.
var testAlert = wire.Alert{
	Version:    1,
	RelayUntil: 1900000000,
	Expiration: 1900003600,
	ID:         7,
	Cancel:     6,
	MinVer:     70000,
	MaxVer:     70015,
	Priority:   100,
	StatusBar:  "Network upgrade scheduled",
}

// testKey returns a private key derived from a fixed scalar.
func testKey(b byte) *secp256k1.PrivateKey {
	var scalar [32]byte
	scalar[31] = b
	return secp256k1.PrivKeyFromBytes(scalar[:])
}

// TestSignVerify ensures a signed alert verifies under its signing key and is
// rejected under any other key.
func TestSignVerify(t *testing.T) {
	key := testKey(1)
	signed, err := Sign(&testAlert, key)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	got, err := signed.Verify(key.PubKey().SerializeUncompressed())
	if err != nil {
		t.Fatalf("Verify: unexpected error: %v", err)
	}
	want := testAlert
	want.SetCancel = []int32{}
	want.SetSubVer = []string{}
	if !reflect.DeepEqual(got, &want) {
		t.Fatalf("Verify: unexpected alert\n got: %s want: %s",
			spew.Sdump(got), spew.Sdump(&want))
	}

	// Compressed and uncompressed forms of the key verify alike.
	if _, err := signed.Verify(key.PubKey().SerializeCompressed()); err != nil {
		t.Fatalf("Verify with compressed key: unexpected error: %v", err)
	}

	other := testKey(2).PubKey().SerializeUncompressed()
	if _, err := signed.Verify(other); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("Verify with other key: got %v, want %v", err,
			ErrInvalidSignature)
	}
}

// TestVerifyForNet ensures alerts verify only under the alert key of the
// network they were signed for.
func TestVerifyForNet(t *testing.T) {
	key := testKey(3)
	signed, err := Sign(&testAlert, key)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	params := *chaincfg.RegNetParams()
	params.AlertPubKey = key.PubKey().SerializeUncompressed()
	if _, err := signed.VerifyForNet(&params); err != nil {
		t.Fatalf("VerifyForNet: unexpected error: %v", err)
	}

	for _, net := range []*chaincfg.Params{chaincfg.MainNetParams(),
		chaincfg.TestNetParams(), chaincfg.RegNetParams()} {

		_, err := signed.VerifyForNet(net)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("%s: got %v, want %v", net.Name, err,
				ErrInvalidSignature)
		}
	}
}

// TestVerifyErrors ensures tampered alerts and invalid keys are rejected.
func TestVerifyErrors(t *testing.T) {
	key := testKey(4)
	pubKey := key.PubKey().SerializeUncompressed()
	signed, err := Sign(&testAlert, key)
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	tampered := *signed
	tampered.Payload = append([]byte(nil), signed.Payload...)
	tampered.Payload[len(tampered.Payload)-2] ^= 0x01

	truncatedSig := *signed
	truncatedSig.Signature = signed.Signature[:len(signed.Signature)-1]

	// A validly signed payload with trailing garbage.
	trailing := SignedAlert{Payload: append(append([]byte(nil),
		signed.Payload...), 0x00)}
	trailing.Signature = signPayload(key, trailing.Payload)

	tests := []struct {
		name   string
		signed *SignedAlert
		key    []byte
		err    error
	}{
		{"tampered payload", &tampered, pubKey, ErrInvalidSignature},
		{"truncated signature", &truncatedSig, pubKey, ErrInvalidSignature},
		{"invalid key", signed, pubKey[:64], ErrInvalidAlertKey},
		{"trailing bytes", &trailing, pubKey, ErrMalformedAlert},
	}

	for _, test := range tests {
		_, err := test.signed.Verify(test.key)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.err)
		}
	}
}

// TestSignedAlertWire ensures signed alerts round trip through their encoding.
func TestSignedAlertWire(t *testing.T) {
	signed, err := Sign(&testAlert, testKey(5))
	if err != nil {
		t.Fatalf("Sign: unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := signed.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: unexpected error: %v", err)
	}
	var decoded SignedAlert
	if err := decoded.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}
	if !reflect.DeepEqual(&decoded, signed) {
		t.Fatalf("Deserialize\n got: %s want: %s", spew.Sdump(&decoded),
			spew.Sdump(signed))
	}
}
