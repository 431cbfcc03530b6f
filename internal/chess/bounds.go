package chess

import "golang.org/x/exp/constraints"

// within reports whether lo <= v < hi.
func within[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v < hi
}

func onBoard[T constraints.Integer](v T) bool {
	return within(v, 0, BoardSize)
}

// Valid reports whether s is White or Black.
func (s Side) Valid() bool {
	return within(s, White, Black+1)
}

// Valid reports whether k names one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return within(k, Pawn, NumPieceKinds)
}

// Valid reports whether the piece has a known kind and side. Positions
// from the decoder only hold valid pieces.
func (p Piece) Valid() bool {
	return p.Kind.Valid() && p.Side.Valid()
}
