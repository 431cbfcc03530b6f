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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithDetails adds the non-board fields below each text grid.
func (b *ConfigBuilder) WithDetails(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowDetails = enabled
	return b
}

// WithMarker sets the empty-square marker.
func (b *ConfigBuilder) WithMarker(marker rune) *ConfigBuilder {
	b.cfg.Render.Marker = marker
	return b
}

// WithCoordinates enables rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Render.Coordinates = enabled
	return b
}

// WithColor enables coloured pieces.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Render.Color = enabled
	return b
}

// WithMissingClocks accepts four-field positions.
func (b *ConfigBuilder) WithMissingClocks(enabled bool) *ConfigBuilder {
	b.cfg.Decode.AllowMissingClocks = enabled
	return b
}

// WithWorkers sets the number of decoding goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithMaterial selects positions by material balance.
func (b *ConfigBuilder) WithMaterial(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Filter.Material = pattern
	b.cfg.Filter.ExactMaterial = exact
	return b
}

// WithPattern adds a board pattern to select positions by.
func (b *ConfigBuilder) WithPattern(pattern string) *ConfigBuilder {
	b.cfg.Filter.Patterns = append(b.cfg.Filter.Patterns, pattern)
	return b
}

// WithServerAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
