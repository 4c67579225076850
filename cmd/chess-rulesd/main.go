// chess-rulesd serves the rules engine and game sessions over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

var (
	listenAddr  = flag.String("addr", ":8080", "Address to listen on")
	accessLog   = flag.Bool("access-log", true, "Log every request")
	workers     = flag.Int("workers", runtime.NumCPU(), "Goroutines per perft request")
	maxDepth    = flag.Int("max-depth", config.NewPerftConfig().MaxDepth, "Largest perft depth accepted")
	maxHalfmove = flag.Uint("max-halfmove", engine.DefaultMaxHalfmoveClock, "Largest accepted halfmove clock (0 = unbounded)")
	lenient     = flag.Bool("lenient", false, "Accept any non-negative move counters")
	verbosity   = flag.Int("v", config.Normal, "Verbosity: 0=errors only, 1=normal, 2=debug")
)

func main() {
	flag.Parse()

	cfg, err := config.NewConfigBuilder().
		WithListenAddr(*listenAddr).
		WithAccessLog(*accessLog).
		WithWorkers(*workers).
		WithMaxPerftDepth(*maxDepth).
		WithMaxHalfmoveClock(*maxHalfmove).
		WithLenientClocks(*lenient).
		WithVerbosity(*verbosity).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-rulesd: %v\n", err)
		os.Exit(2)
	}

	if err := serve(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-rulesd: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the API until SIGINT or SIGTERM, then drains open requests.
func serve(cfg *config.Config) error {
	log := cfg.Logger()
	srv := server.New(cfg, log).HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Server.ListenAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
