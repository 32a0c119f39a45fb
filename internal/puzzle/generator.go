// Package puzzle generates arithmetic questions for a difficulty tier and
// checks learner answers against them.
package puzzle

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mathadventures/internal/difficulty"
)

// Source produces puzzles for a tier.
type Source interface {
	Generate(tier difficulty.Tier) Puzzle
}

// Generator draws operands from an explicitly provided random source, so a
// fixed seed yields a fixed puzzle sequence.
type Generator struct {
	rng *rand.Rand
}

var _ Source = (*Generator)(nil)

// New creates a Generator using rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator from a 64-bit seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate returns a puzzle appropriate to tier. Unknown tiers are treated
// as Hard.
func (g *Generator) Generate(tier difficulty.Tier) Puzzle {
	var a, b int
	var op Operator

	switch tier {
	case difficulty.Easy:
		a = g.between(0, 9)
		b = g.between(0, 9)
		op = g.pick(OpAdd, OpSub)

	case difficulty.Medium:
		op = g.pick(OpAdd, OpSub, OpMul)
		if op == OpMul {
			a = g.between(2, 9)
			b = g.between(2, 9)
		} else {
			a = g.between(10, 50)
			b = g.between(1, 30)
		}

	default:
		op = g.pick(OpAdd, OpSub, OpMul, OpDiv)
		switch op {
		case OpDiv:
			b = g.between(2, 12)
			a = g.between(2, 12) * b
		case OpMul:
			a = g.between(5, 20)
			b = g.between(5, 20)
		default:
			a = g.between(50, 200)
			b = g.between(10, 100)
		}
	}

	return Puzzle{
		Text:   fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer: Evaluate(a, b, op),
		A:      a,
		B:      b,
		Op:     op,
		Tier:   tier,
	}
}

// Evaluate computes a op b. Division is integer division.
func Evaluate(a, b int, op Operator) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	}
	return 0
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) pick(ops ...Operator) Operator {
	return ops[g.rng.IntN(len(ops))]
}
