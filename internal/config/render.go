package config

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/render"
)

// RenderConfig holds settings for the text grid.
type RenderConfig struct {
	// Marker is drawn on empty squares
	Marker rune

	// Coordinates adds rank labels and a file footer
	Coordinates bool

	// Color colours the pieces with ANSI escapes
	Color bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Marker: render.DefaultMarker,
	}
}

// Validate checks that the marker is a single visible character.
func (r *RenderConfig) Validate() error {
	if !unicode.IsGraphic(r.Marker) || unicode.IsSpace(r.Marker) {
		return fmt.Errorf("empty-square marker %q is not printable: %w", r.Marker, errors.ErrInvalidConfig)
	}
	return nil
}

// Renderer builds the renderer these settings describe.
func (r *RenderConfig) Renderer() *render.Renderer {
	opts := []render.Option{render.WithMarker(r.Marker)}
	if r.Coordinates {
		opts = append(opts, render.WithCoordinates())
	}
	if r.Color {
		opts = append(opts, render.WithColor())
	}
	return render.NewRenderer(opts...)
}
