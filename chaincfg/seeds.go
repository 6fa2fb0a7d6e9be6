// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/decred/dcrd/crypto/rand"
	dcrwire "github.com/decred/dcrd/wire"
)

const (
	// SeedRecordSize is the size of one record of a compiled seed table: a
	// 16-byte IPv6 (or IPv4-mapped) address followed by a big-endian port.
	SeedRecordSize = net.IPv6len + 2

	// oneWeek is the base age given to fixed seeds.  Each seed is given a
	// random last seen time between one and two weeks ago so it is
	// preferred less than addresses learned from the network.
	oneWeek = 7 * 24 * time.Hour
)

// SeedSpec is a compiled in bootstrap peer.
type SeedSpec struct {
	Addr [net.IPv6len]byte
	Port uint16
}

// String returns the seed in host:port form.
func (s SeedSpec) String() string {
	return net.JoinHostPort(net.IP(s.Addr[:]).String(),
		strconv.Itoa(int(s.Port)))
}

// ParseSeedTable decodes a compiled seed table made of consecutive
// SeedRecordSize byte records.
func ParseSeedTable(table []byte) ([]SeedSpec, error) {
	if len(table)%SeedRecordSize != 0 {
		str := fmt.Sprintf("seed table length %d is not a multiple of the "+
			"%d byte record size", len(table), SeedRecordSize)
		return nil, paramsError(ErrSeedTableLength, str)
	}

	specs := make([]SeedSpec, 0, len(table)/SeedRecordSize)
	for rec := table; len(rec) > 0; rec = rec[SeedRecordSize:] {
		var spec SeedSpec
		copy(spec.Addr[:], rec[:net.IPv6len])
		spec.Port = binary.BigEndian.Uint16(rec[net.IPv6len:SeedRecordSize])
		specs = append(specs, spec)
	}
	return specs, nil
}

// mustParseSeedTable returns the decoded seed table and panics on error.  It
// is only used with the generated tables of this package.
func mustParseSeedTable(table string) []SeedSpec {
	specs, err := ParseSeedTable([]byte(table))
	if err != nil {
		panic(err)
	}
	return specs
}

// ConvertSeeds converts compiled seed specs into bootstrap addresses with a
// random last seen time between one and two weeks before now.  Output order
// matches the input.
func ConvertSeeds(specs []SeedSpec) []*dcrwire.NetAddress {
	return convertSeeds(specs, time.Now(), rand.Int64N)
}

// convertSeeds is ConvertSeeds with an injectable clock and source of random
// numbers in [0, n).
func convertSeeds(specs []SeedSpec, now time.Time, randInt64N func(n int64) int64) []*dcrwire.NetAddress {
	const weekSecs = int64(oneWeek / time.Second)

	addrs := make([]*dcrwire.NetAddress, 0, len(specs))
	for i := range specs {
		spec := &specs[i]
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		lastSeen := now.Unix() - weekSecs - randInt64N(weekSecs)
		addrs = append(addrs, dcrwire.NewNetAddressTimestamp(
			time.Unix(lastSeen, 0), dcrwire.SFNodeNetwork, ip, spec.Port))
	}
	return addrs
}
