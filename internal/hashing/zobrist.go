package hashing

import "github.com/lgbarn/fenboard-go/internal/chess"

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys, generated once from a fixed seed so keys are stable
// between runs.
var (
	pieceKeys     [2][chess.NumPieceKinds][numSquares]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for side := range pieceKeys {
		for kind := range pieceKeys[side] {
			for sq := range pieceKeys[side][kind] {
				pieceKeys[side][kind][sq] = next()
			}
		}
	}
	blackToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// ZobristHash returns the Zobrist key of a position. It covers piece
// placement, side to move, castling flags and the en passant file; the
// move counters are not part of the key. Pieces off the board or with an
// unknown kind or side are skipped.
func ZobristHash(pos *chess.Position) uint64 {
	if pos == nil {
		return 0
	}

	var hash uint64
	for _, p := range pos.Pieces {
		if !p.InBounds() || !p.Valid() {
			continue
		}
		hash ^= pieceKeys[p.Side][p.Kind][p.Rank*chess.BoardSize+p.File]
	}
	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}

	flags := []bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, set := range flags {
		if set {
			hash ^= castlingKeys[i]
		}
	}

	if ep := pos.EnPassant; ep != nil && ep.InBounds() {
		hash ^= enPassantKeys[ep.File]
	}
	return hash
}

// WeakHash returns a cheap placement-only checksum used as a second check
// when Zobrist keys collide.
func WeakHash(pos *chess.Position) uint64 {
	if pos == nil {
		return 0
	}
	var hash uint64
	for _, p := range pos.Pieces {
		sq := uint64(p.Rank*chess.BoardSize + p.File)
		piece := uint64(p.Side)*uint64(chess.NumPieceKinds) + uint64(p.Kind) + 1
		hash += (sq + 1) * piece * 0x100000001B3
	}
	return hash
}
