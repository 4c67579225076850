package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithMaxHalfmoveClock sets the FEN halfmove bound (0 = unbounded).
func (b *ConfigBuilder) WithMaxHalfmoveClock(n uint) *ConfigBuilder {
	b.cfg.Rules.MaxHalfmoveClock = n
	return b
}

// WithLenientClocks relaxes the FEN clock checks.
func (b *ConfigBuilder) WithLenientClocks(enabled bool) *ConfigBuilder {
	b.cfg.Rules.LenientClocks = enabled
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithMaxPerftDepth sets the largest accepted perft depth.
func (b *ConfigBuilder) WithMaxPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}

// WithDivide enables per-root-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithListenAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithAccessLog toggles HTTP access logging.
func (b *ConfigBuilder) WithAccessLog(enabled bool) *ConfigBuilder {
	b.cfg.Server.AccessLog = enabled
	return b
}
