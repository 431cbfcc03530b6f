package matching

import (
	"github.com/lgbarn/fenboard-go/internal/chess"
)

// standardMaterial is the material of each side in the initial position.
var standardMaterial = [chess.NumPieceKinds]int{
	chess.Pawn:   8,
	chess.Rook:   2,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Queen:  1,
	chess.King:   1,
}

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	if pos == nil {
		return false
	}

	var minors [2][]chess.Piece
	for _, piece := range pos.Pieces {
		if !piece.Valid() {
			continue
		}
		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minors[piece.Side] = append(minors[piece.Side], piece)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			isLightSquare(white[0]) == isLightSquare(black[0])
	}
	return false
}

// isLightSquare returns true if the piece stands on a light square.
func isLightSquare(piece chess.Piece) bool {
	sq := piece.Square()
	return (sq.File+sq.Rank)%2 == 1
}

// IsStandardMaterial reports whether both sides have exactly the material
// of the initial position.
func IsStandardMaterial(pos *chess.Position) bool {
	m := pos.Material()
	return m[chess.White] == standardMaterial && m[chess.Black] == standardMaterial
}

// InsufficientMaterialMatcher matches positions where neither side can mate.
type InsufficientMaterialMatcher struct{}

// Match implements PositionMatcher.
func (InsufficientMaterialMatcher) Match(pos *chess.Position) bool {
	return HasInsufficientMaterial(pos)
}

// Name implements PositionMatcher.
func (InsufficientMaterialMatcher) Name() string {
	return "InsufficientMaterial"
}

// MaterialOddsMatcher matches positions whose material differs from the
// initial position's.
type MaterialOddsMatcher struct{}

// Match implements PositionMatcher.
func (MaterialOddsMatcher) Match(pos *chess.Position) bool {
	return pos != nil && !IsStandardMaterial(pos)
}

// Name implements PositionMatcher.
func (MaterialOddsMatcher) Name() string {
	return "MaterialOdds"
}
