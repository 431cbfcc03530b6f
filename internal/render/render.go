// Package render draws positions as 8x8 text grids.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/fenboard-go/internal/chess"
)

// Defaults for the plain grid.
const (
	DefaultMarker    = '*'
	DefaultSeparator = " "
)

// Renderer formats positions as text. It holds no per-call state and is
// safe for concurrent use.
type Renderer struct {
	marker      rune
	separator   string
	coordinates bool
	white       *color.Color
	black       *color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMarker sets the empty-square marker.
func WithMarker(marker rune) Option {
	return func(r *Renderer) {
		r.marker = marker
	}
}

// WithSeparator sets the text written after every square.
func WithSeparator(sep string) Option {
	return func(r *Renderer) {
		r.separator = sep
	}
}

// WithCoordinates labels each rank on the left and adds a file footer.
func WithCoordinates() Option {
	return func(r *Renderer) {
		r.coordinates = true
	}
}

// WithColor colours White and Black pieces. Colour is forced on even when
// the output is not a terminal, since the caller asked for it.
func WithColor() Option {
	return func(r *Renderer) {
		r.white = color.New(color.FgHiYellow, color.Bold)
		r.white.EnableColor()
		r.black = color.New(color.FgHiBlue, color.Bold)
		r.black.EnableColor()
	}
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		marker:    DefaultMarker,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// Render returns the plain 8x8 grid for pos: one line per rank, top rank
// first, each square a piece letter or '*' followed by a space.
func Render(pos *chess.Position) string {
	return defaultRenderer.Render(pos)
}

// Render returns the grid for pos. A nil position renders as an empty
// board. When two pieces share a square the first in sequence order is
// drawn.
func (r *Renderer) Render(pos *chess.Position) string {
	var sb strings.Builder
	r.write(&sb, pos)
	return sb.String()
}

// Fprint writes the grid for pos to w.
func (r *Renderer) Fprint(w io.Writer, pos *chess.Position) error {
	_, err := io.WriteString(w, r.Render(pos))
	return err
}

func (r *Renderer) write(sb *strings.Builder, pos *chess.Position) {
	grid, _ := pos.Occupancy()

	for rank := 0; rank < chess.BoardSize; rank++ {
		if r.coordinates {
			sb.WriteRune(rune(chess.RankBase + chess.BoardSize - 1 - rank))
			sb.WriteString(r.separator)
		}
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(r.square(grid[rank][file]))
			sb.WriteString(r.separator)
		}
		sb.WriteByte('\n')
	}

	if r.coordinates {
		sb.WriteString(strings.Repeat(" ", 1+len(r.separator)))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteRune(rune(chess.FileBase + file))
			sb.WriteString(r.separator)
		}
		sb.WriteByte('\n')
	}
}

// square returns the text for one square.
func (r *Renderer) square(piece *chess.Piece) string {
	if piece == nil {
		return string(r.marker)
	}
	symbol := string(piece.Symbol())
	switch {
	case piece.Side == chess.White && r.white != nil:
		return r.white.Sprint(symbol)
	case piece.Side == chess.Black && r.black != nil:
		return r.black.Sprint(symbol)
	}
	return symbol
}
