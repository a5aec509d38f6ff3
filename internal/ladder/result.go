package ladder

import (
	"fmt"
	"strings"
)

// Result is the outcome of one attempt at a level.
type Result string

const (
	Win  Result = "win"
	Loss Result = "loss"
)

// ParseResult converts user text ("win", "W", "loss", "l") to a Result.
func ParseResult(s string) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win", "w":
		return Win, nil
	case "loss", "lose", "l":
		return Loss, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownResult, s)
}

// Entry is one recorded outcome: the level landed on, the balance banked
// there and the result that caused the move.
type Entry struct {
	Level   int     `yaml:"level"`
	Balance float64 `yaml:"balance"`
	Result  Result  `yaml:"result"`
}
