package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
)

// Pattern is a board pattern to match, written like a FEN board field.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
//
// Ranks are listed from rank 8 down; a pattern with fewer than eight ranks
// only constrains the ranks it lists.
type Pattern struct {
	Text    string
	Label   string // optional label for matched position
	Hash    uint64 // position hash for exact FEN matches
	IsExact bool   // true if this is a full FEN (no wildcards)
	ranks   []string
}

// PatternMatcher provides pattern-based position filtering.
type PatternMatcher struct {
	patterns    []*Pattern
	exactHashes map[uint64]*Pattern
}

// NewPatternMatcher creates a new pattern matcher.
func NewPatternMatcher() *PatternMatcher {
	return &PatternMatcher{
		exactHashes: make(map[uint64]*Pattern),
	}
}

// AddFEN adds an exact position to match. Placement, side to move,
// castling and en passant must all agree; the move counters are ignored.
func (pm *PatternMatcher) AddFEN(encoding string, label string) error {
	pos, err := fen.Parse(encoding)
	if err != nil {
		return err
	}

	hash := hashing.ZobristHash(pos)
	pattern := &Pattern{
		Text:    encoding,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern
	return nil
}

// AddPattern adds a board pattern with wildcards. With includeInvert the
// colour-reversed pattern is matched too; a short pattern is padded to
// eight ranks first, so its reversed form constrains the bottom ranks.
func (pm *PatternMatcher) AddPattern(text string, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &Pattern{
		Text:  text,
		Label: label,
		ranks: strings.Split(text, "/"),
	})

	if includeInvert {
		inverted := invertPattern(fullBoardPattern(text))
		pm.patterns = append(pm.patterns, &Pattern{
			Text:  inverted,
			Label: label,
			ranks: strings.Split(inverted, "/"),
		})
	}
}

// Match implements PositionMatcher.
func (pm *PatternMatcher) Match(pos *chess.Position) bool {
	return pm.MatchPosition(pos) != nil
}

// Name implements PositionMatcher.
func (pm *PatternMatcher) Name() string {
	return fmt.Sprintf("PatternMatcher(%d patterns)", len(pm.patterns))
}

// MatchPosition returns the first pattern pos matches, or nil.
func (pm *PatternMatcher) MatchPosition(pos *chess.Position) *Pattern {
	if pos == nil || len(pm.patterns) == 0 {
		return nil
	}

	// First check exact hash matches (fast)
	if pattern, ok := pm.exactHashes[hashing.ZobristHash(pos)]; ok {
		return pattern
	}

	boardRanks := boardToRanks(pos)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(boardRanks, pattern) {
			return pattern
		}
	}
	return nil
}

// PatternCount returns the number of patterns.
func (pm *PatternMatcher) PatternCount() int {
	return len(pm.patterns)
}

// matchPattern checks if board ranks match a pattern with wildcards.
func matchPattern(boardRanks [chess.BoardSize]string, pattern *Pattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}

	for i, patternRank := range pattern.ranks {
		if i >= chess.BoardSize {
			break
		}
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a position to rank strings (rank 8 first), with
// '_' for empty squares.
func boardToRanks(pos *chess.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	grid, _ := pos.Occupancy()

	for r := range grid {
		var sb strings.Builder
		for _, piece := range grid[r] {
			if piece == nil {
				sb.WriteByte('_')
			} else {
				sb.WriteRune(piece.Symbol())
			}
		}
		ranks[r] = sb.String()
	}
	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			// Try matching rest of pattern at each position
			for ; bi <= len(boardRank); bi++ {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			for n := int(c - '0'); n > 0; n-- {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match; '_' is an empty square
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// fullBoardPattern pads a pattern with "*" ranks, or trims it, to exactly
// eight ranks.
func fullBoardPattern(text string) string {
	ranks := strings.Split(text, "/")
	if len(ranks) > chess.BoardSize {
		ranks = ranks[:chess.BoardSize]
	}
	for len(ranks) < chess.BoardSize {
		ranks = append(ranks, "*")
	}
	return strings.Join(ranks, "/")
}

// invertPattern swaps colours in a pattern and reverses its rank order.
func invertPattern(pattern string) string {
	var result strings.Builder

	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 'a' - 'A')
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 'a' + 'A')
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}
