// Package errors provides sentinel errors and error types for fenboard.
// Every decode failure is a *FENError whose Kind is one of the sentinels
// below, so callers can branch with errors.Is instead of matching text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for decode failures.
var (
	// ErrInvalidFEN matches every decode failure.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMalformedFieldCount indicates the encoding does not split into six fields.
	ErrMalformedFieldCount = errors.New("malformed field count")

	// ErrInvalidPieceLetter indicates an unrecognised board-field character.
	ErrInvalidPieceLetter = errors.New("invalid piece letter")

	// ErrInvalidSideToMove indicates a side-to-move field other than "w" or "b".
	ErrInvalidSideToMove = errors.New("invalid side to move")

	// ErrInvalidSquare indicates a malformed en passant target.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidCounter indicates a non-numeric halfmove or fullmove field.
	ErrInvalidCounter = errors.New("invalid counter")

	// ErrRankOverflow indicates the board field does not describe exactly eight ranks.
	ErrRankOverflow = errors.New("rank overflow")

	// ErrFileOverflow indicates a rank running past the eighth file.
	ErrFileOverflow = errors.New("file overflow")

	// ErrShortRank indicates a rank that ends before the eighth file.
	ErrShortRank = errors.New("short rank")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// codes maps each decode kind to a stable identifier for machine consumers.
var codes = []struct {
	kind error
	code string
}{
	{ErrMalformedFieldCount, "malformed_field_count"},
	{ErrInvalidPieceLetter, "invalid_piece_letter"},
	{ErrInvalidSideToMove, "invalid_side_to_move"},
	{ErrInvalidSquare, "invalid_square"},
	{ErrInvalidCounter, "invalid_counter"},
	{ErrRankOverflow, "rank_overflow"},
	{ErrFileOverflow, "file_overflow"},
	{ErrShortRank, "short_rank"},
	{ErrInvalidConfig, "invalid_config"},
}

// Code returns the snake_case identifier of err's kind, "invalid_fen" for
// other FEN failures and "" for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	if errors.Is(err, ErrInvalidFEN) {
		return "invalid_fen"
	}
	return "unknown"
}

// FENError describes a decode failure. Kind is one of the sentinel errors;
// Field names the encoding field ("board", "side", "castling", "en passant",
// "halfmove", "fullmove") and Offset is the 0-based character offset within
// the board field, or -1 when it does not apply.
type FENError struct {
	Kind   error
	Field  string
	Value  string
	Offset int
}

// NewFENError creates a FENError without an offset.
func NewFENError(kind error, field, value string) *FENError {
	return &FENError{Kind: kind, Field: field, Value: value, Offset: -1}
}

// Error returns a formatted message including the field and offending value.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Offset >= 0 {
			parts = append(parts, fmt.Sprintf("%s field at offset %d", e.Field, e.Offset))
		} else {
			parts = append(parts, e.Field+" field")
		}
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	kind := e.Kind
	if kind == nil {
		kind = ErrInvalidFEN
	}
	if len(parts) == 0 {
		return kind.Error()
	}
	return fmt.Sprintf("%s: %v", strings.Join(parts, " "), kind)
}

// Unwrap returns the error kind.
func (e *FENError) Unwrap() error {
	return e.Kind
}

// Is reports whether target is ErrInvalidFEN, so every FENError matches the
// umbrella sentinel as well as its own kind.
func (e *FENError) Is(target error) bool {
	return target == ErrInvalidFEN
}

// ParseError attaches an input location to an error. It's used when
// encodings are read line by line from files.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	loc := e.File
	if e.Line > 0 {
		if loc == "" {
			loc = "line"
		}
		loc += fmt.Sprintf(":%d", e.Line)
	}

	if e.Err != nil {
		if loc != "" {
			return fmt.Sprintf("%s: %v", loc, e.Err)
		}
		return e.Err.Error()
	}
	if loc != "" {
		return loc
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
