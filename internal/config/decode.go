package config

import "github.com/lgbarn/fenboard-go/internal/fen"

// DecodeConfig holds settings for the FEN decoder.
type DecodeConfig struct {
	// AllowMissingClocks accepts four-field EPD positions
	AllowMissingClocks bool
}

// NewDecodeConfig creates a DecodeConfig with default values.
func NewDecodeConfig() *DecodeConfig {
	return &DecodeConfig{}
}

// Decoder builds the decoder these settings describe.
func (d *DecodeConfig) Decoder() *fen.Decoder {
	var opts []fen.Option
	if d.AllowMissingClocks {
		opts = append(opts, fen.WithMissingClocks())
	}
	return fen.NewDecoder(opts...)
}
