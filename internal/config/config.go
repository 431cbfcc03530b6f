// Package config provides configuration for fenboard.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration. Sub-configs group the settings of
// each stage; the writers are shared by all of them.
type Config struct {
	// 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	Decode    *DecodeConfig
	Render    *RenderConfig
	Output    *OutputConfig
	Batch     *BatchConfig
	Duplicate *DuplicateConfig
	Filter    *FilterConfig
	Server    *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Decode:     NewDecodeConfig(),
		Render:     NewRenderConfig(),
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream rendered positions are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		c.Render,
		c.Output,
		c.Batch,
		c.Duplicate,
		c.Server,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
