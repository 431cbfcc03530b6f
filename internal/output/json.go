package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/render"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN            string       `json:"fen,omitempty"`
	Pieces         []JSONPiece  `json:"pieces"`
	SideToMove     string       `json:"sideToMove"` // "white" or "black"
	Castling       JSONCastling `json:"castling"`
	EnPassant      string       `json:"enPassant,omitempty"`
	HalfmoveClock  uint         `json:"halfmoveClock"`
	FullmoveNumber uint         `json:"fullmoveNumber"`
	Material       string       `json:"material"`
	Board          []string     `json:"board"`
}

// JSONPiece represents one piece in JSON format. File and Rank are the
// grid indexes; Square is the algebraic name.
type JSONPiece struct {
	Square string `json:"square"`
	File   int    `json:"file"`
	Rank   int    `json:"rank"`
	Kind   string `json:"kind"`
	Side   string `json:"side"`
	Symbol string `json:"symbol"`
}

// JSONCastling holds the castling flags along with their FEN form.
type JSONCastling struct {
	Text           string `json:"text"`
	WhiteKingside  bool   `json:"whiteKingside"`
	WhiteQueenside bool   `json:"whiteQueenside"`
	BlackKingside  bool   `json:"blackKingside"`
	BlackQueenside bool   `json:"blackQueenside"`
}

// PositionToJSON converts a position to JSON format. source is the encoding
// it was decoded from and may be empty.
func PositionToJSON(pos *chess.Position, source string) *JSONPosition {
	jp := &JSONPosition{
		FEN:    source,
		Pieces: make([]JSONPiece, 0),
		Board:  strings.Split(strings.TrimSuffix(render.Render(pos), "\n"), "\n"),
	}
	if pos == nil {
		jp.SideToMove = sideName(chess.White)
		jp.Castling.Text = chess.Castling{}.String()
		jp.Material = chess.Material{}.String()
		return jp
	}

	for _, p := range pos.Pieces {
		jp.Pieces = append(jp.Pieces, JSONPiece{
			Square: p.Square().String(),
			File:   p.File,
			Rank:   p.Rank,
			Kind:   strings.ToLower(p.Kind.String()),
			Side:   sideName(p.Side),
			Symbol: string(p.Symbol()),
		})
	}

	jp.SideToMove = sideName(pos.ToMove)
	jp.Castling = JSONCastling{
		Text:           pos.Castling.String(),
		WhiteKingside:  pos.Castling.WhiteKingside,
		WhiteQueenside: pos.Castling.WhiteQueenside,
		BlackKingside:  pos.Castling.BlackKingside,
		BlackQueenside: pos.Castling.BlackQueenside,
	}
	if pos.EnPassant != nil {
		jp.EnPassant = pos.EnPassant.String()
	}
	jp.HalfmoveClock = pos.HalfmoveClock
	jp.FullmoveNumber = pos.FullmoveNumber
	jp.Material = pos.Material().String()
	return jp
}

func sideName(s chess.Side) string {
	return strings.ToLower(s.String())
}

// encodeJSON writes v as indented JSON.
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
