package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTier is returned when a string does not name a difficulty tier.
var ErrUnknownTier = errors.New("unknown difficulty tier")

// Tier represents a difficulty tier. Tiers are totally ordered:
// Easy < Medium < Hard.
type Tier int

const (
	Easy   Tier = iota // Single-digit addition and subtraction
	Medium             // Two-digit sums and the times table
	Hard               // Larger operands and exact division
)

// All returns every tier in ascending order.
func All() []Tier {
	return []Tier{Easy, Medium, Hard}
}

// Valid reports whether t is one of the fixed tiers.
func (t Tier) Valid() bool {
	return t >= Easy && t <= Hard
}

// Up returns the next harder tier. Hard stays Hard.
func (t Tier) Up() Tier {
	if t >= Hard {
		return Hard
	}
	return t + 1
}

// Down returns the next easier tier. Easy stays Easy.
func (t Tier) Down() Tier {
	if t <= Easy {
		return Easy
	}
	return t - 1
}

func (t Tier) String() string {
	switch t {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Parse converts a tier name ("easy", "Medium", ...) or a menu choice
// ("1", "2", "3") into a Tier.
func Parse(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return Easy, nil
	case "2", "medium":
		return Medium, nil
	case "3", "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}
