// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"go/format"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/blankcoin/blankd/chaincfg"
)

// generatedHeader starts every generated seed file.
const generatedHeader = "// Code generated by genseeds from contrib/seeds. DO NOT EDIT.\n\n" +
	"package chaincfg\n"

// seedTable is a named compiled seed table of one network.
type seedTable struct {
	constName string
	network   string
	seeds     []chaincfg.SeedSpec
}

// parseSeeds reads a seed list of one host:port per line.  Blank lines and
// lines starting with # are ignored.  Lines without a port use defaultPort.
// Hosts must be IPv4 or IPv6 literals.
func parseSeeds(r io.Reader, defaultPort uint16) ([]chaincfg.SeedSpec, error) {
	var seeds []chaincfg.SeedSpec
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		seed, err := parseSeed(line, defaultPort)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seeds, nil
}

// parseSeed parses a single host[:port] seed entry.
func parseSeed(entry string, defaultPort uint16) (chaincfg.SeedSpec, error) {
	host, portStr := entry, ""
	if h, p, err := net.SplitHostPort(entry); err == nil {
		host, portStr = h, p
	} else if strings.HasPrefix(entry, "[") && strings.HasSuffix(entry, "]") {
		host = entry[1 : len(entry)-1]
	}

	var seed chaincfg.SeedSpec
	ip := net.ParseIP(host)
	if ip == nil {
		return seed, fmt.Errorf("seed host %q is not an IP address", host)
	}
	copy(seed.Addr[:], ip.To16())

	seed.Port = defaultPort
	if portStr != "" {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil || port == 0 {
			return seed, fmt.Errorf("invalid seed port %q", portStr)
		}
		seed.Port = uint16(port)
	}
	return seed, nil
}

// encodeSeed returns the compiled seed table record of the seed.
func encodeSeed(seed chaincfg.SeedSpec) []byte {
	rec := make([]byte, chaincfg.SeedRecordSize)
	copy(rec, seed.Addr[:])
	binary.BigEndian.PutUint16(rec[net.IPv6len:], seed.Port)
	return rec
}

// generate writes the gofmt formatted Go source declaring the passed seed
// tables to w.
func generate(w io.Writer, tables []seedTable) error {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	for _, table := range tables {
		fmt.Fprintf(&buf, "\n// %s is the compiled seed table of the %s.\n",
			table.constName, table.network)
		fmt.Fprintf(&buf, "const %s = \"\" +\n", table.constName)
		for _, seed := range table.seeds {
			buf.WriteString("\t\"")
			for _, b := range encodeSeed(seed) {
				fmt.Fprintf(&buf, "\\x%02x", b)
			}
			fmt.Fprintf(&buf, "\" + // %s\n", seed)
		}
		buf.WriteString("\t\"\"\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated seed source does not parse: %w", err)
	}
	_, err = w.Write(src)
	return err
}
