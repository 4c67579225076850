// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Position options
	fenString   = flag.String("fen", engine.StartFEN, "FEN string (defaults to initial position)")
	moveList    = flag.String("moves", "", "Space-separated UCI moves to play before counting")
	fenFile     = flag.String("f", "", "File of FEN strings, one per line, each counted in turn")
	maxHalfmove = flag.Uint("max-halfmove", engine.DefaultMaxHalfmoveClock, "Largest accepted halfmove clock (0 = unbounded)")
	lenient     = flag.Bool("lenient", false, "Accept any non-negative move counters")

	// Perft options
	depth    = flag.Int("depth", 0, "Perft depth (required)")
	divide   = flag.Bool("divide", false, "Print per-move node counts at root")
	workers  = flag.Int("workers", runtime.NumCPU(), "Number of goroutines counting root moves")
	maxDepth = flag.Int("max-depth", config.NewPerftConfig().MaxDepth, "Refuse depths above this")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showFEN    = flag.Bool("showfen", false, "Print the counted position first")
	moveOrder  = flag.Bool("genorder", false, "List divide output in generation order instead of sorted")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", config.Normal, "Verbosity: 0=errors only, 1=normal, 2=debug")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig turns the parsed flags into a validated Config. The returned
// func closes the -o and -l files and must be called once the run is over;
// on error any file already created has been closed.
func buildConfig() (*config.Config, func(), error) {
	b := config.NewConfigBuilder().
		WithVerbosity(*verbosity).
		WithMaxHalfmoveClock(*maxHalfmove).
		WithLenientClocks(*lenient).
		WithWorkers(*workers).
		WithMaxPerftDepth(*maxDepth).
		WithDivide(*divide).
		WithJSONOutput(*jsonOutput)

	var files []*os.File
	closeFiles := func() {
		for _, f := range files {
			f.Close()
		}
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
		}
		files = append(files, file)
		b.WithOutput(file)
	}
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			closeFiles()
			return nil, nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		files = append(files, file)
		b.WithLog(file)
	}

	cfg, err := b.Build()
	if err != nil {
		closeFiles()
		return nil, nil, err
	}
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.SortDivide = !*moveOrder
	return cfg, closeFiles, nil
}

// buildJobs returns the positions to count: every line of -f, or -fen
// with -moves applied.
func buildJobs() ([]Job, error) {
	if *fenFile == "" {
		return []Job{{FEN: *fenString, Moves: strings.Fields(*moveList), Depth: *depth}}, nil
	}
	file, err := os.Open(*fenFile)
	if err != nil {
		return nil, fmt.Errorf("opening FEN file %s: %w", *fenFile, err)
	}
	defer file.Close()
	return readJobs(file, *depth)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft -depth N [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the legal move tree of a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
