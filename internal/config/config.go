// Package config provides configuration for the rules engine tools.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // progress and results
	Verbose = 2 // running commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=normal, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Rules  *RulesConfig
	Perft  *PerftConfig
	Output *OutputConfig
	Server *ServerConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Rules:      NewRulesConfig(),
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
	}
}

// SetOutput sets the output stream for results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and returns the first problem found,
// wrapped around ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log streams must be set")
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logger returns a structured logger writing to LogFile at the level
// implied by Verbosity.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	switch {
	case c.Verbosity <= Quiet:
		level = slog.LevelError
	case c.Verbosity >= Verbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(c.LogFile, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
