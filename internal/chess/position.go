package chess

import "strings"

// Castling holds the four castling availability flags. A flag means the
// side has not yet forfeited the right on that wing; it does not mean
// castling is legal in the position.
type Castling struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// String returns the flags in FEN form, "-" when none are set.
func (c Castling) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Any reports whether any castling flag is set.
func (c Castling) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Position is a decoded chess position.
type Position struct {
	// Pieces in encoding scan order: top rank first, left to right within
	// a rank. Nothing here enforces one piece per square.
	Pieces []Piece

	// Who has the next move.
	ToMove Side

	Castling Castling

	// The square skipped by the last two-square pawn advance, if any.
	EnPassant *Square

	// Half-moves since the last capture or pawn advance.
	HalfmoveClock uint

	// Starts at 1 and is incremented after Black's move.
	FullmoveNumber uint
}

// PieceAt returns the first piece in sequence order standing on the given
// square.
func (p *Position) PieceAt(file, rank int) (Piece, bool) {
	if p == nil {
		return Piece{}, false
	}
	for _, piece := range p.Pieces {
		if piece.File == file && piece.Rank == rank {
			return piece, true
		}
	}
	return Piece{}, false
}

// Count returns the number of pieces of the given side and kind.
func (p *Position) Count(side Side, kind PieceKind) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, piece := range p.Pieces {
		if piece.Side == side && piece.Kind == kind {
			n++
		}
	}
	return n
}

// Occupancy returns the position as an 8x8 grid indexed [rank][file].
// When two pieces share a square the first one keeps it and the later ones
// are returned in duplicates. Out of bounds pieces are dropped.
func (p *Position) Occupancy() (grid [BoardSize][BoardSize]*Piece, duplicates []Piece) {
	if p == nil {
		return grid, nil
	}
	for i := range p.Pieces {
		piece := &p.Pieces[i]
		if !piece.InBounds() {
			continue
		}
		if grid[piece.Rank][piece.File] != nil {
			duplicates = append(duplicates, *piece)
			continue
		}
		grid[piece.Rank][piece.File] = piece
	}
	return grid, duplicates
}
