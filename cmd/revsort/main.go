// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/btcsuite/seqtreap"
	"github.com/btcsuite/seqtreap/revsort"
)

var (
	cfg *config
	log btclog.Logger

	// logRotator is the optional file logging output.  It must be closed
	// on shutdown.
	logRotator *rotator.Rotator
)

// logWriter implements an io.Writer that outputs to standard error and, when
// a log file is configured, the write-end pipe of the log rotator.  Standard
// output is reserved for the reported indices.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// readSequence parses the expected input format from r: an element count
// followed by that many whitespace-separated integers.
func readSequence(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	readInt := func() (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(scanner.Text())
	}

	count, err := readInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read element count: %v", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("element count %d is negative", count)
	}

	values := make([]int, 0, count)
	for i := 0; i < count; i++ {
		value, err := readInt()
		if err != nil {
			return nil, fmt.Errorf("failed to read element %d of "+
				"%d: %v", i+1, count, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// writeIndices writes the reported indices to w space separated on a single
// line.
func writeIndices(w io.Writer, indices []int) error {
	bw := bufio.NewWriter(w)
	for i, index := range indices {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(index)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	if cfg.LogFile != "" {
		r, err := rotator.New(cfg.LogFile, 10*1024, false, 3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create file "+
				"rotator: %v\n", err)
			return err
		}
		defer r.Close()
		logRotator = r
	}
	backendLogger := btclog.NewBackend(logWriter{})
	log = backendLogger.Logger("MAIN")
	sortLog := backendLogger.Logger("SORT")
	revsort.UseLogger(sortLog)
	level, _ := btclog.LevelFromString(cfg.DebugLevel)
	log.SetLevel(level)
	sortLog.SetLevel(level)

	// Fixed seeds produce a reproducible treap shape, which also makes
	// trace logs of the run comparable.
	if cfg.Seed != 0 {
		seqtreap.SeedPriorities(cfg.Seed)
	}

	// Read the permutation.
	fi := os.Stdin
	if cfg.InFile != "-" {
		fi, err = os.Open(cfg.InFile)
		if err != nil {
			log.Errorf("Failed to open file %v: %v", cfg.InFile, err)
			return err
		}
		defer fi.Close()
	}
	values, err := readSequence(fi)
	if err != nil {
		log.Errorf("Failed to parse input: %v", err)
		return err
	}

	// Perform the reversal sort.
	log.Infof("Sorting a permutation of %d elements", len(values))
	start := time.Now()
	indices, err := revsort.Indices(values)
	if err != nil {
		log.Errorf("Failed to sort: %v", err)
		return err
	}
	log.Infof("Processed %d steps in %v", len(indices), time.Since(start))

	// Report the per-step indices.
	fo := os.Stdout
	if cfg.OutFile != "-" {
		fo, err = os.Create(cfg.OutFile)
		if err != nil {
			log.Errorf("Failed to create file %v: %v", cfg.OutFile,
				err)
			return err
		}
		defer fo.Close()
	}
	if err := writeIndices(fo, indices); err != nil {
		log.Errorf("Failed to write indices: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
