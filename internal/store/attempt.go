package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/mathadventures/internal/attemptlog"
)

// AttemptRepo appends attempt records to the attempts table. It implements
// attemptlog.Sink; closing it closes the owning Store.
type AttemptRepo struct {
	db    *sql.DB
	seq   *sequenceCounter
	owner *Store
}

var _ attemptlog.Sink = (*AttemptRepo)(nil)

// Append stores rec with the next global sequence number.
func (r *AttemptRepo) Append(ctx context.Context, rec attemptlog.Record) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts (sequence, timestamp, session_id, name, difficulty, op, a, b, correct, time_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		ts.UTC().Format(time.RFC3339Nano),
		rec.SessionID,
		rec.Name,
		rec.Difficulty,
		rec.Op,
		rec.A,
		rec.B,
		rec.CorrectFlag(),
		rec.Seconds(),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

// Close closes the owning Store.
func (r *AttemptRepo) Close() error {
	return r.owner.Close()
}

// StoredAttempt is a row read back from the attempts table.
type StoredAttempt struct {
	Sequence int64
	attemptlog.Record
}

// BySession returns a session's attempts in sequence order.
func (r *AttemptRepo) BySession(ctx context.Context, sessionID string) ([]StoredAttempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, session_id, name, difficulty, op, a, b, correct, time_secs
		 FROM attempts WHERE session_id = ? ORDER BY sequence`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []StoredAttempt
	for rows.Next() {
		var (
			sa      StoredAttempt
			ts      string
			correct int
			secs    float64
		)
		if err := rows.Scan(&sa.Sequence, &ts, &sa.SessionID, &sa.Name, &sa.Difficulty,
			&sa.Op, &sa.A, &sa.B, &correct, &secs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		sa.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse attempt timestamp: %w", err)
		}
		sa.Correct = correct == 1
		sa.Elapsed = time.Duration(secs * float64(time.Second)).Round(time.Millisecond)
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}
