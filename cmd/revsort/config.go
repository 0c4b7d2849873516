// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"
	defaultInFile     = "-"
	defaultOutFile    = "-"
)

// config defines the configuration options for revsort.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	InFile     string `short:"i" long:"infile" description:"File containing the permutation to sort -- Use - to read from stdin"`
	LogFile    string `long:"logfile" description:"Also write logs to this file with rotation"`
	OutFile    string `short:"o" long:"outfile" description:"File to write the reported indices to -- Use - to write to stdout"`
	Seed       int64  `long:"seed" description:"Seed for the treap priority generator for reproducible runs -- Use 0 for a time-based seed"`
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultDebugLevel,
		InFile:     defaultInFile,
		OutFile:    defaultOutFile,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	funcName := "loadConfig"

	// Validate debug log level.
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		str := "%s: The specified debug level [%v] is invalid"
		err := fmt.Errorf(str, funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Ensure the specified input file exists when not reading from stdin.
	if cfg.InFile != "-" && !fileExists(cfg.InFile) {
		str := "%s: The specified input file [%v] does not exist"
		err := fmt.Errorf(str, funcName, cfg.InFile)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
