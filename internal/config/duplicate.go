package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also requires equal move counters
	ExactMatch bool

	// Capacity bounds the number of remembered positions (0 = unlimited)
	Capacity int

	// DuplicateFile receives the encodings of suppressed duplicates
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether positions need to be checked for duplicates.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFile != nil
}

// Validate checks the capacity.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative, got %d: %w", d.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
