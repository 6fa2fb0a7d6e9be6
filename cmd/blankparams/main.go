// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/blankcoin/blankd/blankutil"
	"github.com/blankcoin/blankd/chaincfg"
	"github.com/blankcoin/blankd/internal/version"
	"github.com/decred/dcrd/txscript/v4"
	flags "github.com/jessevdk/go-flags"
)

// genesisRewardAddress returns the pay-to-pubkey-hash address of the public
// key paid by the genesis coinbase.
func genesisRewardAddress(params *chaincfg.Params) (string, error) {
	pkScript := params.GenesisBlock.Transactions[0].TxOut[0].PkScript
	tokenizer := txscript.MakeScriptTokenizer(0, pkScript)
	if !tokenizer.Next() || tokenizer.Data() == nil {
		return "", fmt.Errorf("genesis output script %x does not start "+
			"with a public key", pkScript)
	}
	addr, err := blankutil.NewAddressPubKey(tokenizer.Data(), params)
	if err != nil {
		return "", err
	}
	return addr.Address(), nil
}

// writeParams writes a human-readable summary of the network parameters to w.
func writeParams(w io.Writer, params *chaincfg.Params, showSeeds bool) error {
	rewardAddr, err := genesisRewardAddress(params)
	if err != nil {
		return err
	}
	genesis := params.GenesisBlock
	coinbase := genesis.Transactions[0]
	magic := params.Magic.MessageStart()

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	row := func(name string, format string, args ...interface{}) {
		fmt.Fprintf(tw, "%s\t"+format+"\n", append([]interface{}{name},
			args...)...)
	}
	row("Network", "%s", params.Name)
	row("Message start", "%x", magic[:])
	row("Peer port", "%s", params.DefaultPort)
	row("RPC port", "%s", params.RPCPort)
	row("RPC password required", "%v", params.RequireRPCPassword)
	row("Data directory", "%q", params.DataDirName)
	row("PoW limit", "%064x", params.PowLimit)
	row("PoW limit bits", "%08x", params.PowLimitBits)
	row("Last PoW block", "%d", params.LastPoWBlock)
	row("Genesis hash", "%v", params.GenesisHash)
	row("Genesis merkle root", "%v", params.GenesisMerkleRoot)
	row("Genesis time", "%s", genesis.Header.Timestamp.UTC().Format(time.RFC3339))
	row("Genesis nonce", "%d", genesis.Header.Nonce)
	row("Genesis reward", "%v", blankutil.Amount(coinbase.TxOut[0].Value))
	row("Genesis reward address", "%s", rewardAddr)
	row("Pubkey hash prefix", "%d", params.Prefixes.PubKeyHashAddrID)
	row("Script hash prefix", "%d", params.Prefixes.ScriptHashAddrID)
	row("Private key prefix", "%d", params.Prefixes.PrivateKeyID)
	row("Extended public key", "%x", params.Prefixes.HDPublicKeyID[:])
	row("Extended private key", "%x", params.Prefixes.HDPrivateKeyID[:])
	row("Alert key", "%x", params.AlertPubKey)
	row("DNS seeds", "%s", strings.Join(params.DNSSeeds, ", "))
	row("Fixed seeds", "%d", len(params.FixedSeeds))
	if showSeeds {
		for _, addr := range params.FixedSeeds {
			hostPort := net.JoinHostPort(addr.IP.String(),
				strconv.Itoa(int(addr.Port)))
			row("", "%s (last seen %s)", hostPort,
				addr.Timestamp.UTC().Format(time.RFC3339))
		}
	}
	return tw.Flush()
}

// run selects and seals the network requested by the configuration and writes
// its parameters to w.
func run(cfg *config, w io.Writer) error {
	registry, err := chaincfg.NewRegistry()
	if err != nil {
		return err
	}
	registry.SelectNetwork(cfg.net)
	registry.Seal()

	params := registry.Active()
	bprmLog.Debugf("Writing the %s parameters", params.Name)
	return writeParams(w, params, cfg.ShowSeeds)
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			// go-flags already printed the error.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logRotator.Close()
	}

	if err := run(cfg, os.Stdout); err != nil {
		bprmLog.Errorf("%v", err)
		if logRotator != nil {
			logRotator.Close()
		}
		os.Exit(1)
	}
}
