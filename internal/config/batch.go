package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// BatchConfig holds settings for decoding many encodings at once.
type BatchConfig struct {
	// Workers is the number of decoding goroutines
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// StopAfter stops after this many positions have been written (0 = no limit)
	StopAfter int

	// CommentPrefix marks input lines to skip
	CommentPrefix string
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:       runtime.NumCPU(),
		BufferSize:    64,
		CommentPrefix: "#",
	}
}

// Validate checks worker and buffer counts.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	if b.StopAfter < 0 {
		return fmt.Errorf("stop-after must not be negative, got %d: %w", b.StopAfter, errors.ErrInvalidConfig)
	}
	return nil
}
