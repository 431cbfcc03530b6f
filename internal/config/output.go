package config

import (
	"fmt"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// OutputFormat selects how decoded positions are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // 8x8 text grid
	JSONFormat                     // JSON position documents
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text grid or JSON output
	Format OutputFormat

	// ShowDetails adds side to move, castling, en passant and clocks below
	// each text grid
	ShowDetails bool

	// ShowSource echoes the input encoding above each text grid
	ShowSource bool

	// JSONArray writes all positions as one JSON array instead of one
	// document per position
	JSONArray bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: TextFormat,
	}
}

// Validate checks that the output format is known.
func (o *OutputConfig) Validate() error {
	if o.Format != TextFormat && o.Format != JSONFormat {
		return fmt.Errorf("unknown output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
