package config

import "github.com/lgbarn/chess-rules-go/internal/engine"

// RulesConfig holds the FEN validation policy.
type RulesConfig struct {
	// MaxHalfmoveClock is the largest accepted halfmove clock (0 = unbounded)
	MaxHalfmoveClock uint

	// LenientClocks disables the halfmove bound and the fullmove/halfmove
	// consistency check
	LenientClocks bool
}

// NewRulesConfig creates a RulesConfig with the default FEN policy.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		MaxHalfmoveClock: engine.DefaultMaxHalfmoveClock,
	}
}

// FENOptions converts the policy into options for engine.ParseFEN.
func (r *RulesConfig) FENOptions() []engine.FENOption {
	if r.LenientClocks {
		return []engine.FENOption{engine.WithLenientClocks()}
	}
	return []engine.FENOption{engine.WithMaxHalfmoveClock(r.MaxHalfmoveClock)}
}
