package tracker

import "time"

// HalfStats summarizes one half of a session.
type HalfStats struct {
	Accuracy    float64
	AverageTime time.Duration
	Count       int
}

// Trend compares the first and second halves of a session.
type Trend struct {
	First  HalfStats
	Second HalfStats
}

// HalfTrends splits the attempts at len/2 and summarizes each half. With an
// odd count the extra attempt falls in the second half. Returns false when
// fewer than two attempts exist.
func (t *Tracker) HalfTrends() (Trend, bool) {
	if len(t.attempts) < 2 {
		return Trend{}, false
	}
	mid := len(t.attempts) / 2
	first, second := t.attempts[:mid], t.attempts[mid:]
	return Trend{
		First:  HalfStats{Accuracy: accuracy(first), AverageTime: averageTime(first), Count: len(first)},
		Second: HalfStats{Accuracy: accuracy(second), AverageTime: averageTime(second), Count: len(second)},
	}, true
}

// Improved reports whether the second half was more accurate, or equally
// accurate and faster.
func (tr Trend) Improved() bool {
	if tr.Second.Accuracy != tr.First.Accuracy {
		return tr.Second.Accuracy > tr.First.Accuracy
	}
	return tr.Second.AverageTime < tr.First.AverageTime
}
