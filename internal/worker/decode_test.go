package worker

import (
	"errors"
	"testing"

	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/fen"
)

func TestDecodeFunc(t *testing.T) {
	process := DecodeFunc(fen.NewDecoder())

	t.Run("valid line", func(t *testing.T) {
		item := WorkItem{Line: fen.InitialFEN, Source: "a.fen", LineNum: 3, Index: 2}
		res := process(item)
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Position == nil || len(res.Position.Pieces) != 32 {
			t.Errorf("position = %+v; want 32 pieces", res.Position)
		}
		if res.Item != item || res.Index() != 2 {
			t.Errorf("item = %+v; want %+v", res.Item, item)
		}
	})

	t.Run("invalid line", func(t *testing.T) {
		res := process(WorkItem{Line: "8/8/8/8/8/8/8/8 x - - 0 1", Source: "a.fen", LineNum: 7})
		if res.Position != nil {
			t.Error("position should be nil on error")
		}

		var pe *fenerrors.ParseError
		if !errors.As(res.Err, &pe) {
			t.Fatalf("error %v is not a ParseError", res.Err)
		}
		if pe.File != "a.fen" || pe.Line != 7 {
			t.Errorf("location = %s:%d; want a.fen:7", pe.File, pe.Line)
		}
		if !errors.Is(res.Err, fenerrors.ErrInvalidSideToMove) {
			t.Errorf("error %v should wrap ErrInvalidSideToMove", res.Err)
		}
	})

	t.Run("decoder options apply", func(t *testing.T) {
		epd := DecodeFunc(fen.NewDecoder(fen.WithMissingClocks()))
		res := epd(WorkItem{Line: "8/8/8/8/8/8/8/4K2k w - -"})
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if res.Position.FullmoveNumber != 1 {
			t.Errorf("fullmove = %d; want 1", res.Position.FullmoveNumber)
		}
	})
}

func TestPoolDecodesInOrderWithReorderer(t *testing.T) {
	lines := []string{
		fen.InitialFEN,
		"bad",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	pool := NewPoolWithOptions(DecodeFunc(fen.NewDecoder()), WithWorkers(3), WithBufferSize(2))
	pool.Start()
	go func() {
		for i, line := range lines {
			pool.Submit(WorkItem{Line: line, LineNum: i + 1, Index: i})
		}
		pool.Close()
	}()

	r := NewReorderer()
	var got []ProcessResult
	for res := range pool.Results() {
		got = append(got, r.Push(res)...)
	}
	got = append(got, r.Flush()...)

	if len(got) != len(lines) {
		t.Fatalf("results = %d; want %d", len(got), len(lines))
	}
	for i, res := range got {
		if res.Index() != i {
			t.Errorf("result %d has index %d", i, res.Index())
		}
		if (res.Err != nil) != (i == 1) {
			t.Errorf("result %d error = %v", i, res.Err)
		}
	}
}
