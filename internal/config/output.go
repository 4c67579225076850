package config

// OutputConfig holds settings related to result formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ShowFEN prints the position before the counts
	ShowFEN bool

	// SortDivide orders divide output by move text
	SortDivide bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		SortDivide: true,
	}
}
