// Package output writes decoded positions as text grids or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/render"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position. source is the encoding it
	// was decoded from and may be empty.
	WritePosition(pos *chess.Position, source string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON arrays), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output, writing to w.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	if cfg.Output.Format == config.JSONFormat {
		if cfg.Output.JSONArray {
			return NewJSONWriter(w)
		}
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w, cfg.Render.Renderer(), cfg.Output.ShowSource, cfg.Output.ShowDetails)
}

// TextWriter writes positions as text grids, separated by blank lines.
type TextWriter struct {
	w           io.Writer
	renderer    *render.Renderer
	showSource  bool
	showDetails bool
	written     int
}

// NewTextWriter creates a new text writer. A nil renderer uses the plain
// default grid.
func NewTextWriter(w io.Writer, r *render.Renderer, showSource, showDetails bool) *TextWriter {
	if r == nil {
		r = render.NewRenderer()
	}
	return &TextWriter{
		w:           w,
		renderer:    r,
		showSource:  showSource,
		showDetails: showDetails,
	}
}

// WritePosition writes one grid, optionally headed by its source and
// followed by the non-board fields.
func (tw *TextWriter) WritePosition(pos *chess.Position, source string) error {
	if tw.written > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.written++

	if tw.showSource && source != "" {
		if _, err := fmt.Fprintln(tw.w, source); err != nil {
			return err
		}
	}
	if err := tw.renderer.Fprint(tw.w, pos); err != nil {
		return err
	}
	if tw.showDetails {
		return WriteDetails(tw.w, pos)
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// WriteDetails writes the fields of pos that the grid does not show.
func WriteDetails(w io.Writer, pos *chess.Position) error {
	if pos == nil {
		return nil
	}
	enPassant := "-"
	if pos.EnPassant != nil {
		enPassant = pos.EnPassant.String()
	}
	_, err := fmt.Fprintf(w,
		"Side to move: %s\nCastling: %s\nEn passant: %s\nHalfmove clock: %d\nFullmove number: %d\nMaterial: %s\n",
		pos.ToMove, pos.Castling, enPassant, pos.HalfmoveClock, pos.FullmoveNumber, pos.Material())
	return err
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
	written   bool // An array has been written
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WritePosition(pos *chess.Position, source string) error {
	jp := PositionToJSON(pos, source)
	if jw.single {
		return encodeJSON(jw.w, jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered positions as a JSON array. An empty batch is
// written once as "[]".
func (jw *JSONWriter) Flush() error {
	if jw.single || (jw.written && len(jw.positions) == 0) {
		return nil
	}

	err := encodeJSON(jw.w, jw.positions)
	jw.written = true

	// Clear buffer after writing
	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
