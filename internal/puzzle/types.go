package puzzle

import "github.com/abhisek/mathadventures/internal/difficulty"

// Operator is an arithmetic operator as shown to the learner.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Puzzle is a generated arithmetic question ready for display.
type Puzzle struct {
	// Text is the prompt, e.g. "12 + 7 = ?".
	Text string

	// Answer is the expected integer result. Division puzzles always divide
	// exactly, so Answer is never truncated.
	Answer int

	// A and B are the left and right operands.
	A int
	B int

	Op   Operator
	Tier difficulty.Tier
}
