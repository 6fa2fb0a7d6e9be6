// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"errors"
	"testing"

	"github.com/blankcoin/blankd/chaincfg"
)

// TestExtendedKeyNetwork ensures BIP32 extended keys are matched against the
// extended key versions of a network.
func TestExtendedKeyNetwork(t *testing.T) {
	const (
		xpub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29" +
			"ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
		xprv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkV" +
			"vvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
		tpub = "tpubD6NzVbkrYhZ4XgiXtGrdW5XDAPFCL9h7we1vwNCpn8tGbBcgfVYjXyhWo4E" +
			"1xkh56hjod1RhGjxbaTLV3X4FyWuejifB9jusQ46QzG87VKp"
		tprv = "tprv8ZgxMBicQKsPeDgjzdC36fs6bMjGApWDNLR9erAXMs5skhMv36j9MV5ecvf" +
			"avji5khqjWaWSFhN3YcCUUdiKH6isR4Pwy3U5y5egddBr16m"
	)

	tests := []struct {
		name    string
		key     string
		net     *chaincfg.Params
		private bool
		err     error
	}{
		{"mainnet xpub", xpub, mainNetParams, false, nil},
		{"mainnet xprv", xprv, mainNetParams, true, nil},
		{"testnet tpub", tpub, testNetParams, false, nil},
		{"testnet tprv", tprv, testNetParams, true, nil},
		{"regtest tpub", tpub, regNetParams, false, nil},
		{"regtest tprv", tprv, regNetParams, true, nil},
		{"xpub on testnet", xpub, testNetParams, false, ErrWrongNetwork},
		{"tprv on mainnet", tprv, mainNetParams, false, ErrWrongNetwork},
		{"short payload", CheckEncode(make([]byte, 77),
			[]byte{0x04, 0x88, 0xb2, 0x1e}), mainNetParams, false,
			ErrInvalidFormat},
		{"bad checksum", xpub[:len(xpub)-1] + "9", mainNetParams, false,
			ErrChecksumMismatch},
	}

	for _, test := range tests {
		private, err := ExtendedKeyNetwork(test.key, test.net)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
		if err == nil && private != test.private {
			t.Errorf("%s: private %v, want %v", test.name, private,
				test.private)
		}
	}
}
