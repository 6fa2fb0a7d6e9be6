// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command genseeds compiles the fixed seed lists under contrib/seeds into the
// seed tables of package chaincfg.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/blankcoin/blankd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

type config struct {
	MainNet string `long:"mainnet" description:"Seed list of the main network"`
	TestNet string `long:"testnet" description:"Seed list of the test network"`
	Output  string `short:"o" long:"output" description:"Generated Go file; - writes to stdout"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// loadSeeds parses the seed list at path using the default port of the
// network.
func loadSeeds(path string, params *chaincfg.Params) ([]chaincfg.SeedSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var port uint16
	if _, err := fmt.Sscan(params.DefaultPort, &port); err != nil {
		return nil, fmt.Errorf("%s: invalid default port %q", params.Name,
			params.DefaultPort)
	}
	seeds, err := parseSeeds(f, port)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seeds, nil
}

func main() {
	cfg := config{
		MainNet: "contrib/seeds/nodes_main.txt",
		TestNet: "contrib/seeds/nodes_test.txt",
		Output:  "chaincfg/chainparamsseeds.go",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	mainSeeds, err := loadSeeds(cfg.MainNet, chaincfg.MainNetParams())
	if err != nil {
		fatalf("%v\n", err)
	}
	testSeeds, err := loadSeeds(cfg.TestNet, chaincfg.TestNetParams())
	if err != nil {
		fatalf("%v\n", err)
	}

	var buf bytes.Buffer
	err = generate(&buf, []seedTable{
		{"mainNetSeedTable", "main network", mainSeeds},
		{"testNetSeedTable", "test network", testSeeds},
	})
	if err != nil {
		fatalf("%v\n", err)
	}

	if cfg.Output == "-" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
		fatalf("%v\n", err)
	}
}
