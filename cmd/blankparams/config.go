// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/blankcoin/blankd/chaincfg"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName            = "blankparams"
	defaultLogLevel    = "info"
	defaultLogFilename = appName + ".log"
)

// config defines the configuration options for blankparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	RegNet      bool   `long:"regtest" description:"Use the regression test network"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	ShowSeeds   bool   `long:"showseeds" description:"List the fixed seed addresses of the network"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	// net is the network resolved from the network flags.
	net chaincfg.NetID
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := slog.LevelFromString(logLevel)
	return ok
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]
		if _, exists := subsystemLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID,
				supportedSubsystems())
		}
		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}
		setLogLevel(subsysID, logLevel)
	}
	return nil
}

// loadConfig parses the command line arguments into a config.  The network
// flags are resolved into the network to display, and requesting both the test
// and regression test networks fails with an error wrapping
// chaincfg.ErrConflictingNetworks.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("loadConfig: unexpected arguments %q",
			remaining)
	}

	if cfg.ShowVersion {
		return &cfg, nil
	}

	cfg.net, err = chaincfg.ResolveNetwork(cfg.TestNet, cfg.RegNet)
	if err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}

	// Special show command to list supported subsystems.
	if cfg.DebugLevel == "show" {
		return &cfg, nil
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, fmt.Errorf("loadConfig: %w", err)
	}

	return &cfg, nil
}
