// perft counts move-tree leaf nodes for a chess position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, closeFiles, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
	jobs, err := buildJobs()
	if err != nil {
		closeFiles()
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = Run(ctx, cfg, jobs)
	stop()
	// os.Exit skips deferred calls, so the files are closed here.
	closeFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
}
