// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "testing"

// TestCurrencyNetStringer tests the stringized output for currency net types.
func TestCurrencyNetStringer(t *testing.T) {
	tests := []struct {
		in   CurrencyNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "TestNet"},
		{RegNet, "RegNet"},
		{0xffffffff, "Unknown CurrencyNet (4294967295)"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestMessageStart ensures each network serializes to its message start bytes.
func TestMessageStart(t *testing.T) {
	tests := []struct {
		in   CurrencyNet
		want [4]byte
	}{
		{MainNet, [4]byte{0x27, 0x33, 0x48, 0x63}},
		{TestNet, [4]byte{0xeb, 0x23, 0x1d, 0x42}},
		{RegNet, [4]byte{0x44, 0x15, 0xad, 0x32}},
	}

	for _, test := range tests {
		if got := test.in.MessageStart(); got != test.want {
			t.Errorf("%v: unexpected message start got %x, want %x",
				test.in, got, test.want)
		}
	}
}
