// Package attemptlog persists one flat record per answered question.
package attemptlog

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// Header is the column order of the CSV log.
var Header = []string{"name", "difficulty", "op", "a", "b", "correct", "time"}

// Record is one answered question as written to the log.
type Record struct {
	SessionID  string
	Name       string
	Difficulty string
	Op         string
	A          int
	B          int
	Correct    bool
	Elapsed    time.Duration
	Timestamp  time.Time
}

// CorrectFlag returns 1 for a correct answer and 0 otherwise.
func (r Record) CorrectFlag() int {
	if r.Correct {
		return 1
	}
	return 0
}

// Seconds returns the elapsed time in seconds rounded to milliseconds.
func (r Record) Seconds() float64 {
	return float64(r.Elapsed.Round(time.Millisecond).Milliseconds()) / 1000
}

// Row returns the record's CSV fields in Header order.
func (r Record) Row() []string {
	return []string{
		r.Name,
		r.Difficulty,
		r.Op,
		strconv.Itoa(r.A),
		strconv.Itoa(r.B),
		strconv.Itoa(r.CorrectFlag()),
		strconv.FormatFloat(r.Seconds(), 'f', 3, 64),
	}
}

// Sink receives log records.
type Sink interface {
	Append(ctx context.Context, rec Record) error
	Close() error
}

// MultiSink writes every record to each of its sinks.
type MultiSink []Sink

// Append writes rec to all sinks and joins any errors.
func (m MultiSink) Append(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range m {
		if err := s.Append(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes all sinks and joins any errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards records.
type Nop struct{}

func (Nop) Append(context.Context, Record) error { return nil }
func (Nop) Close() error                         { return nil }
