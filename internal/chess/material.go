package chess

import "strings"

// Material counts the pieces of a position by side and kind.
type Material [2][NumPieceKinds]int

// materialOrder is the order pieces are listed in a material string.
var materialOrder = []PieceKind{King, Queen, Rook, Bishop, Knight, Pawn}

// Material returns the piece counts of the position.
func (p *Position) Material() Material {
	var m Material
	if p == nil {
		return m
	}
	for _, piece := range p.Pieces {
		if piece.Valid() {
			m[piece.Side][piece.Kind]++
		}
	}
	return m
}

// Total returns the number of pieces of one side.
func (m Material) Total(side Side) int {
	n := 0
	for _, c := range m[side] {
		n += c
	}
	return n
}

// String returns the material balance in the "KQRRBBNNPPPPPPPP:kqrr..."
// form used by material-match patterns.
func (m Material) String() string {
	var sb strings.Builder
	for _, side := range []Side{White, Black} {
		if side == Black {
			sb.WriteByte(':')
		}
		for _, kind := range materialOrder {
			letter := Piece{Kind: kind, Side: side}.Symbol()
			for i := 0; i < m[side][kind]; i++ {
				sb.WriteRune(letter)
			}
		}
	}
	return sb.String()
}
