package main

import (
	"testing"

	"github.com/lgbarn/fenboard-go/internal/config"
	fenerrors "github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Output.Format, config.TextFormat)
	testutil.AssertEqual(t, cfg.Render.Marker, '*')
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertTrue(t, !cfg.Duplicate.Enabled(), "duplicate detection should be off")
	testutil.AssertTrue(t, !cfg.Server.Enabled(), "server should be off")
	testutil.AssertTrue(t, cfg.Batch.Workers >= 1, "workers should default to the CPU count")
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(jsonArray, true)()
	defer saveRestoreBool(showDetails, true)()
	defer saveRestoreBool(showSource, true)()

	cfg := config.NewConfig()
	applyOutputFlags(cfg)

	testutil.AssertEqual(t, cfg.Output.Format, config.JSONFormat)
	testutil.AssertTrue(t, cfg.Output.JSONArray, "JSONArray")
	testutil.AssertTrue(t, cfg.Output.ShowDetails, "ShowDetails")
	testutil.AssertTrue(t, cfg.Output.ShowSource, "ShowSource")
}

func TestApplyRenderFlags(t *testing.T) {
	t.Run("marker and options", func(t *testing.T) {
		defer saveRestoreString(marker, ".")()
		defer saveRestoreBool(coordinates, true)()
		defer saveRestoreBool(colorOutput, true)()

		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyRenderFlags(cfg))
		testutil.AssertEqual(t, cfg.Render.Marker, '.')
		testutil.AssertTrue(t, cfg.Render.Coordinates, "Coordinates")
		testutil.AssertTrue(t, cfg.Render.Color, "Color")
	})

	t.Run("multibyte marker", func(t *testing.T) {
		defer saveRestoreString(marker, "·")()

		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyRenderFlags(cfg))
		testutil.AssertEqual(t, cfg.Render.Marker, '·')
	})

	for _, bad := range []string{"", "**"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			defer saveRestoreString(marker, bad)()
			testutil.AssertErrorIs(t, applyRenderFlags(config.NewConfig()), fenerrors.ErrInvalidConfig)
		})
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	defer saveRestoreBool(exactDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 1000)()

	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)

	testutil.AssertTrue(t, cfg.Duplicate.Suppress, "Suppress")
	testutil.AssertTrue(t, cfg.Duplicate.ExactMatch, "ExactMatch")
	testutil.AssertEqual(t, cfg.Duplicate.Capacity, 1000)
}

func TestApplyBatchFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreInt(stopAfter, 10)()

		cfg := config.NewConfig()
		applyBatchFlags(cfg)
		testutil.AssertEqual(t, cfg.Batch.Workers, 3)
		testutil.AssertEqual(t, cfg.Batch.StopAfter, 10)
	})

	t.Run("zero keeps default", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()

		cfg := config.NewConfig()
		want := cfg.Batch.Workers
		applyBatchFlags(cfg)
		testutil.AssertEqual(t, cfg.Batch.Workers, want)
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			testutil.AssertNoError(t, applyFlags(cfg))
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestApplyFlags_DecodeAndServe(t *testing.T) {
	defer saveRestoreBool(epdInput, true)()
	defer saveRestoreString(serveAddr, ":8080")()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertTrue(t, cfg.Decode.AllowMissingClocks, "AllowMissingClocks")
	testutil.AssertEqual(t, cfg.Server.Addr, ":8080")
	testutil.AssertTrue(t, cfg.Server.Enabled(), "server should be enabled")
}

func TestApplyFilterFlags(t *testing.T) {
	t.Run("minimal material", func(t *testing.T) {
		defer saveRestoreString(materialMatch, "QR:q")()

		cfg := config.NewConfig()
		applyFilterFlags(cfg)
		testutil.AssertEqual(t, cfg.Filter.Material, "QR:q")
		testutil.AssertTrue(t, !cfg.Filter.ExactMaterial, "ExactMaterial")
	})

	t.Run("exact material wins", func(t *testing.T) {
		defer saveRestoreString(materialMatch, "QR:q")()
		defer saveRestoreString(materialMatchExact, "KR:k")()
		defer saveRestoreBool(negateMatch, true)()
		defer saveRestoreBool(invertPatterns, true)()

		cfg := config.NewConfig()
		applyFilterFlags(cfg)
		testutil.AssertEqual(t, cfg.Filter.Material, "KR:k")
		testutil.AssertTrue(t, cfg.Filter.ExactMaterial, "ExactMaterial")
		testutil.AssertTrue(t, cfg.Filter.Negate, "Negate")
		testutil.AssertTrue(t, cfg.Filter.IncludeInverted, "IncludeInverted")
	})

	t.Run("repeatable patterns", func(t *testing.T) {
		old := patternMatches
		patternMatches = listFlag{"R*", "*/r*"}
		defer func() { patternMatches = old }()

		cfg := config.NewConfig()
		applyFilterFlags(cfg)
		testutil.AssertEqual(t, cfg.Filter.Patterns, []string{"R*", "*/r*"})
		testutil.AssertTrue(t, cfg.Filter.Active(), "filter should be active")
	})
}
