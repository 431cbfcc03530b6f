// Package chess provides the position model produced by the FEN decoder
// and consumed by the renderer.
package chess

import (
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// Side represents the owner of a piece or the player to move.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := [NumPieceKinds]string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k.Valid() {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lower-case FEN letter of a piece kind.
func (k PieceKind) Letter() rune {
	letters := [NumPieceKinds]rune{'p', 'r', 'n', 'b', 'q', 'k'}
	if k.Valid() {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a lower-case FEN letter to a piece kind.
// The side is carried by the letter's case, so callers lower-case the
// board character before calling and pick the side themselves.
func KindFromLetter(c rune) (PieceKind, error) {
	switch c {
	case 'p':
		return Pawn, nil
	case 'r':
		return Rook, nil
	case 'n':
		return Knight, nil
	case 'b':
		return Bishop, nil
	case 'q':
		return Queen, nil
	case 'k':
		return King, nil
	default:
		return 0, errors.NewFENError(errors.ErrInvalidPieceLetter, "board", string(c))
	}
}

// Board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Piece is a piece standing on the board. File counts from the left edge
// of the encoding and Rank from its top row, so rank 8 is Rank 0.
type Piece struct {
	File int
	Rank int
	Kind PieceKind
	Side Side
}

// Symbol returns the piece letter, upper case for White, or '?' for a
// piece that is not Valid.
func (p Piece) Symbol() rune {
	if !p.Valid() {
		return '?'
	}
	letter := p.Kind.Letter()
	if p.Side == White {
		return letter - 'a' + 'A'
	}
	return letter
}

// InBounds reports whether the piece stands on the 8x8 board.
func (p Piece) InBounds() bool {
	return onBoard(p.File) && onBoard(p.Rank)
}

// Square returns the algebraic square the piece stands on.
func (p Piece) Square() Square {
	return Square{File: p.File, Rank: BoardSize - 1 - p.Rank}
}

// Square is an en passant target. Unlike Piece, its Rank is the algebraic
// rank digit minus one, so "e3" is {File: 4, Rank: 2}.
type Square struct {
	File int
	Rank int
}

// ParseSquare converts an algebraic square such as "e3".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errors.NewFENError(errors.ErrInvalidSquare, "en passant", s)
	}
	file, rank := rune(s[0]), rune(s[1])
	if file < FileBase || file >= FileBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, errors.NewFENError(errors.ErrInvalidSquare, "en passant", s)
	}
	return Square{File: int(file - FileBase), Rank: int(rank - RankBase)}, nil
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]rune{rune(FileBase + s.File), rune(RankBase + s.Rank)})
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return onBoard(s.File) && onBoard(s.Rank)
}
