// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

var (
	// Input options
	fenString = flag.String("fen", "", "Decode and render this encoding instead of reading input files")
	epdInput  = flag.Bool("epd", false, "Accept four-field positions without move counters")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonArray    = flag.Bool("jsonarray", false, "With -J, write all positions as one JSON array")
	showDetails  = flag.Bool("details", false, "Print side to move, castling, en passant, clocks and material below each grid")
	showSource   = flag.Bool("source", false, "Print the input encoding above each grid")

	// Grid options
	coordinates = flag.Bool("coords", false, "Label ranks and files")
	colorOutput = flag.Bool("color", false, "Colour White and Black pieces")
	marker      = flag.String("marker", "*", "Empty-square marker (one character)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Write the encodings of duplicate positions to this file")
	exactDuplicates    = flag.Bool("exact", false, "Positions are only duplicates if their move counters match too")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Selection
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	insufficientFilter = flag.Bool("insufficient", false, "Positions where neither side has mating material")
	materialOddsFilter = flag.Bool("odds", false, "Positions whose material differs from the initial position")
	invertPatterns     = flag.Bool("invert", false, "Also match -pattern with the colours reversed")
	negateMatch        = flag.Bool("n", false, "Output positions that DON'T match the selection")
	positionMatches    listFlag
	patternMatches     listFlag

	// Batch options
	workers   = flag.Int("j", 0, "Number of decoding workers (0 = auto-detect based on CPU cores)")
	stopAfter = flag.Int("stopafter", 0, "Stop after writing N positions")

	// Service
	serveAddr = flag.String("serve", "", "Serve the HTTP API on this address (e.g. :8080) instead of processing input")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	verbose   = flag.Bool("verbose", false, "Report every position decoded")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func init() {
	flag.Var(&positionMatches, "position", "Select positions equal to this encoding, ignoring counters (repeatable)")
	flag.Var(&patternMatches, "pattern", "Select positions whose board matches this pattern; ? any square, ! not empty, A/a any White/Black piece, * any run (repeatable)")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)
	applyBatchFlags(cfg)
	applyFilterFlags(cfg)
	if err := applyRenderFlags(cfg); err != nil {
		return err
	}

	cfg.Decode.AllowMissingClocks = *epdInput
	cfg.Server.Addr = *serveAddr

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	}
	cfg.Output.JSONArray = *jsonArray
	cfg.Output.ShowDetails = *showDetails
	cfg.Output.ShowSource = *showSource
}

// applyRenderFlags configures the text grid.
func applyRenderFlags(cfg *config.Config) error {
	if utf8.RuneCountInString(*marker) != 1 {
		return fmt.Errorf("-marker must be a single character, got %q: %w", *marker, errors.ErrInvalidConfig)
	}
	r, _ := utf8.DecodeRuneInString(*marker)
	cfg.Render.Marker = r
	cfg.Render.Coordinates = *coordinates
	cfg.Render.Color = *colorOutput
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.Capacity = *duplicateCapacity
}

// applyBatchFlags configures the worker pool.
func applyBatchFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	cfg.Batch.StopAfter = *stopAfter
}

// applyFilterFlags configures position selection. An exact material
// pattern takes precedence over a minimal one.
func applyFilterFlags(cfg *config.Config) {
	switch {
	case *materialMatchExact != "":
		cfg.Filter.Material = *materialMatchExact
		cfg.Filter.ExactMaterial = true
	case *materialMatch != "":
		cfg.Filter.Material = *materialMatch
		cfg.Filter.ExactMaterial = false
	}
	cfg.Filter.Positions = append([]string(nil), positionMatches...)
	cfg.Filter.Patterns = append([]string(nil), patternMatches...)
	cfg.Filter.IncludeInverted = *invertPatterns
	cfg.Filter.Insufficient = *insufficientFilter
	cfg.Filter.MaterialOdds = *materialOddsFilter
	cfg.Filter.Negate = *negateMatch
}
