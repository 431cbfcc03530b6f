package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/fenboard-go/internal/errors"
)

// ServerConfig holds settings for the HTTP service.
type ServerConfig struct {
	// Addr is the listen address; empty disables the service
	Addr string

	// ReadTimeout bounds reading a request
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration

	// BodyLimit is the maximum request body size in bytes
	BodyLimit int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		BodyLimit:    16 * 1024,
	}
}

// Enabled reports whether the service should run.
func (s *ServerConfig) Enabled() bool {
	return s.Addr != ""
}

// Validate checks timeouts and the body limit.
func (s *ServerConfig) Validate() error {
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative: %w", errors.ErrInvalidConfig)
	}
	if s.BodyLimit < 1 {
		return fmt.Errorf("body limit must be positive, got %d: %w", s.BodyLimit, errors.ErrInvalidConfig)
	}
	return nil
}
