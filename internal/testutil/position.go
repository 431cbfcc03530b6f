package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/fen"
)

// Positions used across package tests.
const (
	AfterE4FEN   = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	SicilianFEN  = "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"
	LoneKingsFEN = "8/8/8/8/8/8/8/4K2k w - - 0 1"
)

// MustParseFEN decodes a FEN string and calls t.Fatal if it is invalid.
func MustParseFEN(t *testing.T, encoding string) *chess.Position {
	t.Helper()
	pos, err := fen.Parse(encoding)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", encoding, err)
	}
	return pos
}

// GridLines splits rendered output into lines, dropping the trailing
// newline.
func GridLines(rendered string) []string {
	return strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
}
