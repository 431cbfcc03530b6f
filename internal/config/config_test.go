package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
)

// TestNewConfig_Defaults verifies every sub-config is present with sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output.Format != TextFormat {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Render.Marker != '*' {
		t.Errorf("Render.Marker = %q, want '*'", cfg.Render.Marker)
	}
	if cfg.Render.Coordinates || cfg.Render.Color {
		t.Error("coordinates and colour should be off by default")
	}
	if cfg.Decode.AllowMissingClocks {
		t.Error("Decode.AllowMissingClocks should be false by default")
	}
	if cfg.Batch.Workers < 1 {
		t.Errorf("Batch.Workers = %d, want at least 1", cfg.Batch.Workers)
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.Server.Enabled() {
		t.Error("server should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestOutputFormat_String(t *testing.T) {
	if TextFormat.String() != "text" || JSONFormat.String() != "json" {
		t.Errorf("unexpected names %q %q", TextFormat, JSONFormat)
	}
	if OutputFormat(9).String() != "unknown" {
		t.Error("out of range format should be unknown")
	}
}

// TestConfig_Validate verifies each sub-config rejects bad values
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }},
		{"zero buffer", func(c *Config) { c.Batch.BufferSize = 0 }},
		{"negative stop-after", func(c *Config) { c.Batch.StopAfter = -1 }},
		{"space marker", func(c *Config) { c.Render.Marker = ' ' }},
		{"control marker", func(c *Config) { c.Render.Marker = '\t' }},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(7) }},
		{"negative capacity", func(c *Config) { c.Duplicate.Capacity = -5 }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -1 }},
		{"zero body limit", func(c *Config) { c.Server.BodyLimit = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithOutputFormat(JSONFormat).
		WithDetails(true).
		WithMarker('.').
		WithCoordinates(true).
		WithColor(true).
		WithMissingClocks(true).
		WithWorkers(3).
		WithDuplicateSuppression(true).
		WithServerAddr(":8080").
		WithOutput(buf).
		WithLog(buf).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSONFormat || !cfg.Output.ShowDetails {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Render.Marker != '.' || !cfg.Render.Coordinates || !cfg.Render.Color {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if !cfg.Decode.AllowMissingClocks {
		t.Error("Decode.AllowMissingClocks should be true")
	}
	if cfg.Batch.Workers != 3 {
		t.Errorf("Batch.Workers = %d, want 3", cfg.Batch.Workers)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if !cfg.Server.Enabled() || cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.OutputFile != buf || cfg.LogFile != buf || cfg.Verbosity != 2 {
		t.Error("streams or verbosity not applied")
	}
}

// TestRenderConfig_Renderer verifies render settings reach the renderer
func TestRenderConfig_Renderer(t *testing.T) {
	rc := NewRenderConfig()
	rc.Marker = '.'
	rc.Coordinates = true

	out := rc.Renderer().Render(nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0] != "8 . . . . . . . . " {
		t.Errorf("first line = %q", lines[0])
	}
}

// TestDecodeConfig_Decoder verifies decode settings reach the decoder
func TestDecodeConfig_Decoder(t *testing.T) {
	dc := NewDecodeConfig()
	if _, err := dc.Decoder().Decode("8/8/8/8/8/8/8/8 w - -"); !errors.Is(err, fenerrors.ErrMalformedFieldCount) {
		t.Errorf("strict decoder error = %v, want ErrMalformedFieldCount", err)
	}

	dc.AllowMissingClocks = true
	pos, err := dc.Decoder().Decode("8/8/8/8/8/8/8/8 w - -")
	if err != nil {
		t.Fatalf("lenient decoder error = %v", err)
	}
	if pos.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber = %d, want 1", pos.FullmoveNumber)
	}
}

func TestDuplicateConfig_Enabled(t *testing.T) {
	dc := NewDuplicateConfig()
	if dc.Enabled() {
		t.Error("duplicate detection should be off by default")
	}

	dc.Suppress = true
	if !dc.Enabled() {
		t.Error("Suppress should enable duplicate detection")
	}

	dc = NewDuplicateConfig()
	dc.DuplicateFile = &bytes.Buffer{}
	if !dc.Enabled() {
		t.Error("a duplicate file should enable duplicate detection")
	}
}

func TestFilterConfig_Active(t *testing.T) {
	cfg := NewConfig()
	if cfg.Filter.Active() {
		t.Error("default filter should be inactive")
	}

	cfg = NewConfigBuilder().WithMaterial("QR:q", true).Build()
	if !cfg.Filter.Active() || !cfg.Filter.ExactMaterial {
		t.Errorf("Filter = %+v", cfg.Filter)
	}

	cfg = NewConfigBuilder().WithPattern("8/8/8/8/8/8/8/4K3").Build()
	if !cfg.Filter.Active() || len(cfg.Filter.Patterns) != 1 {
		t.Errorf("Filter = %+v", cfg.Filter)
	}
}
