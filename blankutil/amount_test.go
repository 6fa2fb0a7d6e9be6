// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"math"
	"testing"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		coins float64
		atoms Amount
		str   string
		err   bool
	}{
		{"zero", 0, 0, "0 BLANK", false},
		{"genesis reward", 0.00005, 5000, "0.00005 BLANK", false},
		{"one coin", 1, 1e8, "1 BLANK", false},
		{"rounded", 0.123456789, 12345679, "0.12345679 BLANK", false},
		{"one atom", 0.00000001, 1, "0.00000001 BLANK", false},
		{"negative", -1.5, -15e7, "-1.5 BLANK", false},
		{"not a number", math.NaN(), 0, "", true},
		{"infinity", math.Inf(1), 0, "", true},
		{"negative infinity", math.Inf(-1), 0, "", true},
	}

	for _, test := range tests {
		a, err := NewAmount(test.coins)
		if (err != nil) != test.err {
			t.Errorf("%s: unexpected error state %v", test.name, err)
			continue
		}
		if test.err {
			continue
		}
		if a != test.atoms {
			t.Errorf("%s: got %d atoms, want %d", test.name, a, test.atoms)
		}
		if got := a.String(); got != test.str {
			t.Errorf("%s: got %q, want %q", test.name, got, test.str)
		}
	}
}
