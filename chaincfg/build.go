// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/rand"
	"golang.org/x/net/idna"
)

// paramsDraft is the mutable state network overrides are applied to.  It holds
// the parameters under construction along with the inputs that finalize turns
// into derived parameters.
type paramsDraft struct {
	Params

	// genesis is the template the genesis block is built from.  A zero Bits
	// field is replaced by the compact proof-of-work limit.
	genesis GenesisTemplate

	// wantGenesisHash and wantGenesisMerkle are the hard-coded values the
	// built genesis block must match.
	wantGenesisHash   chainhash.Hash
	wantGenesisMerkle chainhash.Hash

	// seeds is the decoded compiled seed table of the network.
	seeds []SeedSpec
}

// paramsOverride applies the settings of one network layer to a draft.
type paramsOverride func(d *paramsDraft)

// networkLayers returns the ordered overrides that build the parameters of
// the passed network.  Each network starts from the layers of the network it
// derives from.
func networkLayers(id NetID) ([]paramsOverride, error) {
	switch id {
	case MainNet:
		return []paramsOverride{mainNetOverrides}, nil
	case TestNet:
		return []paramsOverride{mainNetOverrides, testNetOverrides}, nil
	case RegNet:
		return []paramsOverride{mainNetOverrides, testNetOverrides,
			regNetOverrides}, nil
	}
	str := fmt.Sprintf("network %v is not supported", id)
	return nil, paramsError(ErrUnknownNetwork, str)
}

// buildParams applies the passed layers in order to an empty draft and
// finalizes the result.
func buildParams(now time.Time, randInt64N func(int64) int64, layers ...paramsOverride) (*Params, error) {
	var d paramsDraft
	for _, layer := range layers {
		layer(&d)
	}
	return d.finalize(now, randInt64N)
}

// finalize derives the compact proof-of-work limit, builds and verifies the
// genesis block, validates the DNS seeds, and converts the fixed seeds.
func (d *paramsDraft) finalize(now time.Time, randInt64N func(int64) int64) (*Params, error) {
	p := d.Params
	if p.PowLimit == nil || p.PowLimit.Sign() <= 0 ||
		p.PowLimit.Cmp(maxUint256) > 0 {

		str := fmt.Sprintf("%s proof-of-work limit %v is not a positive "+
			"256-bit value", p.Name, p.PowLimit)
		return nil, paramsError(ErrInvalidPowLimit, str)
	}
	p.PowLimitBits = standalone.BigToCompact(p.PowLimit)

	tmpl := d.genesis
	if tmpl.Bits == 0 {
		tmpl.Bits = p.PowLimitBits
	}
	block, err := BuildGenesisBlock(&tmpl)
	if err != nil {
		return nil, err
	}
	if err := checkGenesisBits(block, p.PowLimit); err != nil {
		return nil, err
	}
	err = verifyGenesis(block, &d.wantGenesisHash, &d.wantGenesisMerkle)
	if err != nil {
		return nil, err
	}
	p.GenesisBlock = block
	p.GenesisHash = d.wantGenesisHash
	p.GenesisMerkleRoot = d.wantGenesisMerkle

	dnsSeeds := make([]string, 0, len(p.DNSSeeds))
	for _, host := range p.DNSSeeds {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			str := fmt.Sprintf("%s DNS seed %q is invalid: %v", p.Name,
				host, err)
			return nil, paramsError(ErrInvalidDNSSeed, str)
		}
		dnsSeeds = append(dnsSeeds, ascii)
	}
	p.DNSSeeds = dnsSeeds

	p.FixedSeeds = convertSeeds(d.seeds, now, randInt64N)

	log.Debugf("Built %s parameters (genesis %v, %d fixed seeds)", p.Name,
		p.GenesisHash, len(p.FixedSeeds))
	return &p, nil
}

// NewParams builds the parameters of the passed network.  The genesis block is
// rebuilt from its template and verified against the hard-coded hash and
// merkle root, so an error of kind ErrGenesisHashMismatch or
// ErrGenesisMerkleMismatch indicates the compiled in constants are
// inconsistent.
func NewParams(id NetID) (*Params, error) {
	layers, err := networkLayers(id)
	if err != nil {
		return nil, err
	}
	return buildParams(time.Now(), rand.Int64N, layers...)
}

// mustBuild returns the parameters of the passed network and panics if they
// cannot be built.  The only way this can panic is if the hard-coded constants
// of the network are inconsistent.
func mustBuild(id NetID) *Params {
	params, err := NewParams(id)
	if err != nil {
		panic(fmt.Sprintf("invalid %v parameters: %v", id, err))
	}
	return params
}
