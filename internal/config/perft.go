package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the number of goroutines counting root subtrees
	Workers int

	// MaxDepth caps requested depths; perft is exponential in depth
	MaxDepth int

	// Divide reports per-root-move counts
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:  runtime.NumCPU(),
		MaxDepth: 7,
	}
}

// Validate checks that the perft configuration is usable.
func (p *PerftConfig) Validate() error {
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("max perft depth (%d) must be at least 1: %w", p.MaxDepth, errors.ErrInvalidConfig)
	}
	return nil
}

// CheckDepth rejects depths outside 1..MaxDepth.
func (p *PerftConfig) CheckDepth(depth int) error {
	if depth < 1 || depth > p.MaxDepth {
		return errors.Wrapf(errors.ErrInvalidDepth, "depth %d not in 1..%d", depth, p.MaxDepth)
	}
	return nil
}
