package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       chess.Material
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact set the position must hold exactly these pieces; otherwise it
// must hold at least them.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material pattern %q has more than one ':': %w", pattern, errors.ErrInvalidConfig)
	}
	if err := mm.parsePieces(parts[0], chess.White); err != nil {
		return err
	}
	if len(parts) == 2 {
		return mm.parsePieces(parts[1], chess.Black)
	}
	return nil
}

// parsePieces counts the piece letters of one side.
func (mm *MaterialMatcher) parsePieces(s string, side chess.Side) error {
	for _, c := range s {
		isWhite, letter := false, c
		if c >= 'A' && c <= 'Z' {
			isWhite, letter = true, c+'a'-'A'
		}
		kind, err := chess.KindFromLetter(letter)
		if err != nil || isWhite != (side == chess.White) {
			return fmt.Errorf("material pattern %q: unexpected %q for %s: %w",
				mm.pattern, c, side, errors.ErrInvalidConfig)
		}
		mm.want[side][kind]++
	}
	return nil
}

// Match implements PositionMatcher.
func (mm *MaterialMatcher) Match(pos *chess.Position) bool {
	have := pos.Material()
	if mm.exactMatch {
		return have == mm.want
	}

	// Each side must have at least the specified pieces
	for side := range mm.want {
		for kind, count := range mm.want[side] {
			if have[side][kind] < count {
				return false
			}
		}
	}
	return true
}

// Name implements PositionMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("MaterialMatcher(exactly %s)", mm.want)
	}
	return fmt.Sprintf("MaterialMatcher(at least %s)", mm.want)
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
