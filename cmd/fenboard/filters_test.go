package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/fenboard-go/internal/config"
	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

const rookEndingFEN = "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"

func TestBuildMatcher_Inactive(t *testing.T) {
	m, err := buildMatcher(config.NewFilterConfig())
	testutil.AssertNoError(t, err)
	if m != nil {
		t.Errorf("buildMatcher() = %v, want nil", m)
	}
}

func TestBuildMatcher(t *testing.T) {
	tests := []struct {
		name   string
		filter config.FilterConfig
		fen    string
		want   bool
	}{
		{"minimal material", config.FilterConfig{Material: "R:"}, rookEndingFEN, true},
		{"minimal material missing", config.FilterConfig{Material: "Q:"}, rookEndingFEN, false},
		{"exact material", config.FilterConfig{Material: "KR:k", ExactMaterial: true}, rookEndingFEN, true},
		{"exact material extra pieces", config.FilterConfig{Material: "KR:k", ExactMaterial: true}, fen.InitialFEN, false},
		{"position", config.FilterConfig{Positions: []string{fen.InitialFEN}}, fen.InitialFEN, true},
		{"position differs", config.FilterConfig{Positions: []string{fen.InitialFEN}}, testutil.AfterE4FEN, false},
		{"pattern", config.FilterConfig{Patterns: []string{"*/*/*/*/*/*/*/R*"}}, rookEndingFEN, true},
		{"pattern colours", config.FilterConfig{Patterns: []string{"r*/*/*/*/*/*/*/*"}}, rookEndingFEN, false},
		{"inverted pattern", config.FilterConfig{Patterns: []string{"r*/*/*/*/*/*/*/*"}, IncludeInverted: true}, rookEndingFEN, true},
		{"insufficient", config.FilterConfig{Insufficient: true}, testutil.LoneKingsFEN, true},
		{"insufficient with rook", config.FilterConfig{Insufficient: true}, rookEndingFEN, false},
		{"odds", config.FilterConfig{MaterialOdds: true}, rookEndingFEN, true},
		{"no odds", config.FilterConfig{MaterialOdds: true}, fen.InitialFEN, false},
		{"negated", config.FilterConfig{Material: "Q:", Negate: true}, rookEndingFEN, true},
		{"all criteria must hold", config.FilterConfig{Material: "R:", Patterns: []string{"r*"}}, rookEndingFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.filter
			m, err := buildMatcher(&filter)
			testutil.AssertNoError(t, err)
			if got := m.Match(testutil.MustParseFEN(t, tt.fen)); got != tt.want {
				t.Errorf("%s.Match(%q) = %v, want %v", m.Name(), tt.fen, got, tt.want)
			}
		})
	}
}

func TestBuildMatcher_Errors(t *testing.T) {
	t.Run("bad material", func(t *testing.T) {
		_, err := buildMatcher(&config.FilterConfig{Material: "X:"})
		testutil.AssertErrorIs(t, err, fenerrors.ErrInvalidConfig)
	})

	t.Run("bad position", func(t *testing.T) {
		_, err := buildMatcher(&config.FilterConfig{Positions: []string{"8/8 w - - 0 1"}})
		testutil.AssertErrorIs(t, err, fenerrors.ErrInvalidFEN)
	})
}

func TestProcessReader_Selection(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log)
	cfg.Verbosity = 2

	m, err := buildMatcher(&config.FilterConfig{Material: "R:"})
	testutil.AssertNoError(t, err)

	p := NewProcessor(cfg)
	p.SetMatcher(m)

	input := strings.Join([]string{fen.InitialFEN, testutil.LoneKingsFEN, rookEndingFEN}, "\n")
	testutil.AssertNoError(t, p.ProcessReader(context.Background(), strings.NewReader(input), "sel.fen"))
	testutil.AssertNoError(t, p.Close())

	testutil.AssertEqual(t, p.Stats(), Stats{Read: 3, Written: 2, Skipped: 1})
	testutil.AssertContains(t, log.String(), "sel.fen:2: not selected")
	testutil.AssertContains(t, out.String(), "R * * * K * * * ")
}

func TestListFlag(t *testing.T) {
	var l listFlag
	testutil.AssertNoError(t, l.Set("a"))
	testutil.AssertNoError(t, l.Set("b"))
	testutil.AssertEqual(t, []string(l), []string{"a", "b"})
	testutil.AssertEqual(t, l.String(), "a,b")
}
