// Package fen decodes FEN position strings into chess.Position values.
package fen

import (
	"strconv"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NumFields is the number of space-separated fields in a FEN string.
const NumFields = 6

// Decoder converts FEN strings to positions. The zero value is the strict
// decoder used by Parse. A Decoder holds no state between calls and is safe
// for concurrent use.
type Decoder struct {
	allowMissingClocks bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMissingClocks accepts four-field (EPD style) positions, defaulting the
// halfmove clock to 0 and the fullmove number to 1.
func WithMissingClocks() Option {
	return func(d *Decoder) {
		d.allowMissingClocks = true
	}
}

// NewDecoder creates a decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse decodes a six-field FEN string with the strict decoder.
func Parse(encoding string) (*chess.Position, error) {
	var d Decoder
	return d.Decode(encoding)
}

// MustParse is like Parse but panics on error. It is meant for constants
// such as InitialFEN.
func MustParse(encoding string) *chess.Position {
	pos, err := Parse(encoding)
	if err != nil {
		panic(err)
	}
	return pos
}

// Decode converts a FEN string to a position. On failure it returns a nil
// position and a *errors.FENError.
func (d *Decoder) Decode(encoding string) (*chess.Position, error) {
	fields := strings.Split(strings.TrimSpace(encoding), " ")
	if len(fields) != NumFields {
		if !(d.allowMissingClocks && len(fields) == NumFields-2) {
			return nil, errors.NewFENError(errors.ErrMalformedFieldCount, "",
				strconv.Itoa(len(fields))+" fields")
		}
		fields = append(fields, "0", "1")
	}

	pieces, err := parsePiecePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(fields[1])
	if err != nil {
		return nil, err
	}

	enPassant, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}

	halfmove, err := parseCounter("halfmove", fields[4])
	if err != nil {
		return nil, err
	}
	fullmove, err := parseCounter("fullmove", fields[5])
	if err != nil {
		return nil, err
	}

	return &chess.Position{
		Pieces:         pieces,
		ToMove:         toMove,
		Castling:       parseCastlingRights(fields[2]),
		EnPassant:      enPassant,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
	}, nil
}

// parsePiecePlacement scans the board field. File and rank are checked on
// every step, so any piece it returns lies on the board.
func parsePiecePlacement(placement string) ([]chess.Piece, error) {
	var pieces []chess.Piece
	file, rank := 0, 0

	boardErr := func(kind error, offset int, value string) error {
		return &errors.FENError{Kind: kind, Field: "board", Value: value, Offset: offset}
	}

	for i, c := range placement {
		switch {
		case c == '/':
			if file < chess.BoardSize {
				return nil, boardErr(errors.ErrShortRank, i, rankName(rank))
			}
			rank++
			file = 0
			if rank >= chess.BoardSize {
				return nil, boardErr(errors.ErrRankOverflow, i, "")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return nil, boardErr(errors.ErrFileOverflow, i, rankName(rank))
			}
		default:
			side, letter := chess.Black, c
			if c >= 'A' && c <= 'Z' {
				side, letter = chess.White, c+'a'-'A'
			}
			kind, err := chess.KindFromLetter(letter)
			if err != nil {
				return nil, boardErr(errors.ErrInvalidPieceLetter, i, string(c))
			}
			if file >= chess.BoardSize {
				return nil, boardErr(errors.ErrFileOverflow, i, rankName(rank))
			}

			pieces = append(pieces, chess.Piece{File: file, Rank: rank, Kind: kind, Side: side})
			file++
		}
	}

	if rank != chess.BoardSize-1 {
		return nil, boardErr(errors.ErrRankOverflow, len(placement), strconv.Itoa(rank+1)+" ranks")
	}
	if file < chess.BoardSize {
		return nil, boardErr(errors.ErrShortRank, len(placement), rankName(rank))
	}
	return pieces, nil
}

// rankName returns the algebraic rank name of a board-field row.
func rankName(rank int) string {
	return "rank " + strconv.Itoa(chess.BoardSize-rank)
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Side, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.NewFENError(errors.ErrInvalidSideToMove, "side", field)
	}
}

// parseCastlingRights parses the castling availability field. Only
// membership is tested; "-" contains none of the letters.
func parseCastlingRights(field string) chess.Castling {
	return chess.Castling{
		WhiteKingside:  strings.ContainsRune(field, 'K'),
		WhiteQueenside: strings.ContainsRune(field, 'Q'),
		BlackKingside:  strings.ContainsRune(field, 'k'),
		BlackQueenside: strings.ContainsRune(field, 'q'),
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(field string) (*chess.Square, error) {
	if field == "-" {
		return nil, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return nil, err
	}
	return &sq, nil
}

// parseCounter parses the halfmove clock or fullmove number field.
func parseCounter(name, field string) (uint, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, errors.NewFENError(errors.ErrInvalidCounter, name, field)
	}
	return uint(n), nil
}
