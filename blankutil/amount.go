// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blankutil

import (
	"errors"
	"math"
	"strconv"
)

// AtomsPerCoin is the number of atomic units in one coin.
const AtomsPerCoin = 1e8

// Amount represents the base monetary unit of a coin, an atom.  A single
// Amount is equal to 1e-8 of a coin.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in coins.  NewAmount errors if f is NaN or +-Infinity.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}
	return round(f * AtomsPerCoin), nil
}

// ToCoin returns the amount as a floating point number of coins.
func (a Amount) ToCoin() float64 {
	return float64(a) / AtomsPerCoin
}

// String returns the amount in coins with the BLANK suffix using the fewest
// digits that represent it exactly.
func (a Amount) String() string {
	return strconv.FormatFloat(a.ToCoin(), 'f', -1, 64) + " BLANK"
}
