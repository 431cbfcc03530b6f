package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Since we can't mock *testing.T, these tests exercise success cases
// directly and check formatMessage on its own.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(t, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "r n b q", "n b")
	AssertNotContains(t, "r n b q", "K")
	AssertTrue(t, len("hello") == 5)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestGridLines(t *testing.T) {
	AssertEqual(t, GridLines("a\nb\n"), []string{"a", "b"})
}

func TestMustParseFEN(t *testing.T) {
	pos := MustParseFEN(t, LoneKingsFEN)
	AssertEqual(t, len(pos.Pieces), 2)
}
