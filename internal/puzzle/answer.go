package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned when learner input is not an integer.
var ErrInvalidAnswer = errors.New("invalid answer")

// CheckAnswer compares learner input with the puzzle's answer.
//
// Whitespace is trimmed and leading zeros or a leading "+" are accepted.
// Input that does not parse as an integer returns ErrInvalidAnswer; callers
// count it as incorrect.
func CheckAnswer(input string, p Puzzle) (bool, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidAnswer, input)
	}
	return n == p.Answer, nil
}
