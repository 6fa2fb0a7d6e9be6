// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// upgradeAlert is an alert asking a range of clients to upgrade.
var upgradeAlert = Alert{
	Version:    1,
	RelayUntil: 1900000000,
	Expiration: 1900003600,
	ID:         1010,
	Cancel:     1009,
	SetCancel:  []int32{1000},
	MinVer:     70000,
	MaxVer:     70015,
	SetSubVer:  []string{"/Blankcoin:1.0.0/"},
	Priority:   5000,
	Comment:    "",
	StatusBar:  "URGENT: upgrade required",
	Reserved:   "",
}

// upgradeAlertEncoded is the wire encoding of upgradeAlert.
var upgradeAlertEncoded = hexToBytes("0100000000b33f710000000010c13f71000000" +
	"00f2030000f103000001e8030000701101007f11010001112f426c616e6b636f696e" +
	"3a312e302e302f881300000018555247454e543a2075706772616465207265717569" +
	"72656400")

// TestAlertWire tests the Alert wire encode and decode.
func TestAlertWire(t *testing.T) {
	var buf bytes.Buffer
	if err := upgradeAlert.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), upgradeAlertEncoded) {
		t.Fatalf("Serialize\n got: %s want: %s", spew.Sdump(buf.Bytes()),
			spew.Sdump(upgradeAlertEncoded))
	}

	serialized, err := upgradeAlert.Bytes()
	if err != nil || !bytes.Equal(serialized, upgradeAlertEncoded) {
		t.Fatalf("Bytes: unexpected result %x (err %v)", serialized, err)
	}

	var alert Alert
	if err := alert.Deserialize(bytes.NewReader(upgradeAlertEncoded)); err != nil {
		t.Fatalf("Deserialize: unexpected error: %v", err)
	}
	if !reflect.DeepEqual(&alert, &upgradeAlert) {
		t.Fatalf("Deserialize\n got: %s want: %s", spew.Sdump(&alert),
			spew.Sdump(&upgradeAlert))
	}
}

// TestAlertWireErrors performs negative tests against wire encode and decode
// of Alert to confirm error paths work correctly.
func TestAlertWireErrors(t *testing.T) {
	tests := []struct {
		max      int   // Max size of fixed buffer to induce errors
		writeErr error // Expected write error
		readErr  error // Expected read error
	}{
		{0, io.ErrShortWrite, io.EOF},  // version
		{4, io.ErrShortWrite, io.EOF},  // relay until
		{12, io.ErrShortWrite, io.EOF}, // expiration
		{20, io.ErrShortWrite, io.EOF}, // id
		{24, io.ErrShortWrite, io.EOF}, // cancel
		{28, io.ErrShortWrite, io.EOF}, // cancel set count
		{29, io.ErrShortWrite, io.EOF}, // cancel set entry
		{33, io.ErrShortWrite, io.EOF}, // min version
		{37, io.ErrShortWrite, io.EOF}, // max version
		{41, io.ErrShortWrite, io.EOF}, // subversion set count
		{42, io.ErrShortWrite, io.EOF}, // subversion set entry
		{60, io.ErrShortWrite, io.EOF}, // priority
		{64, io.ErrShortWrite, io.EOF}, // comment
		{65, io.ErrShortWrite, io.EOF}, // status bar
		{90, io.ErrShortWrite, io.EOF}, // reserved
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		w := newFixedWriter(test.max)
		err := upgradeAlert.Serialize(w)
		if !errors.Is(err, test.writeErr) {
			t.Errorf("Serialize #%d wrong error got: %v, want: %v", i,
				err, test.writeErr)
			continue
		}

		var alert Alert
		r := newFixedReader(test.max, upgradeAlertEncoded)
		err = alert.Deserialize(r)
		if !errors.Is(err, test.readErr) {
			t.Errorf("Deserialize #%d wrong error got: %v, want: %v", i,
				err, test.readErr)
			continue
		}
	}
}

// TestAlertOverflowErrors ensures alerts claiming more set entries than
// allowed are rejected before allocating them.
func TestAlertOverflowErrors(t *testing.T) {
	fixed := upgradeAlertEncoded[:28]
	tests := []struct {
		name string
		buf  []byte
	}{{
		name: "cancel set",
		buf:  append(append([]byte{}, fixed...), 0xfd, 0x01, 0x04),
	}, {
		name: "subversion set",
		buf: append(append(append([]byte{}, upgradeAlertEncoded[:41]...),
			0xfe), 0xff, 0xff, 0xff, 0x00),
	}}

	for _, test := range tests {
		var alert Alert
		err := alert.Deserialize(bytes.NewReader(test.buf))
		if !errors.Is(err, ErrTooManyAlertEntries) {
			t.Errorf("%s: wrong error got: %v, want: %v", test.name, err,
				ErrTooManyAlertEntries)
		}
	}
}

// TestAlertTargets ensures alerts apply to the expected clients and cancel the
// expected alerts.
func TestAlertTargets(t *testing.T) {
	applies := []struct {
		version int32
		subVer  string
		want    bool
	}{
		{70000, "/Blankcoin:1.0.0/", true},
		{70015, "/Blankcoin:1.0.0/", true},
		{69999, "/Blankcoin:1.0.0/", false},
		{70016, "/Blankcoin:1.0.0/", false},
		{70010, "/Blankcoin:1.1.0/", false},
	}
	for _, test := range applies {
		got := upgradeAlert.AppliesTo(test.version, test.subVer)
		if got != test.want {
			t.Errorf("AppliesTo(%d, %q) = %v, want %v", test.version,
				test.subVer, got, test.want)
		}
	}

	anyClient := upgradeAlert
	anyClient.SetSubVer = nil
	if !anyClient.AppliesTo(70010, "/other:0.1/") {
		t.Error("alert without subversions does not apply to every client")
	}

	cancels := []struct {
		id   int32
		want bool
	}{
		{1, true},
		{1009, true},
		{1000, true},
		{1010, false},
		{2000, false},
	}
	for _, test := range cancels {
		if got := upgradeAlert.Cancels(test.id); got != test.want {
			t.Errorf("Cancels(%d) = %v, want %v", test.id, got, test.want)
		}
	}
}
