package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/mathadventures/internal/attemptlog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='attempts'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "attempts" {
		t.Errorf("table name = %q, want 'attempts'", name)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptRepo_AppendAndRead(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	recs := []attemptlog.Record{
		{SessionID: "s1", Name: "Ada", Difficulty: "Easy", Op: "+", A: 3, B: 4, Correct: true, Elapsed: 2500 * time.Millisecond, Timestamp: ts},
		{SessionID: "s2", Name: "Bob", Difficulty: "Hard", Op: "/", A: 36, B: 6, Correct: false, Elapsed: 9 * time.Second, Timestamp: ts},
		{SessionID: "s1", Name: "Ada", Difficulty: "Medium", Op: "*", A: 7, B: 8, Correct: false, Elapsed: 11123 * time.Millisecond, Timestamp: ts.Add(time.Minute)},
	}
	for i, r := range recs {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	assertRecord(t, got[0].Record, recs[0])
	assertRecord(t, got[1].Record, recs[2])
}

func assertRecord(t *testing.T, got, want attemptlog.Record) {
	t.Helper()
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, want.Timestamp)
	}
	got.Timestamp, want.Timestamp = time.Time{}, time.Time{}
	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestAttemptRepo_DefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if err := repo.Append(ctx, attemptlog.Record{SessionID: "s", Name: "n", Difficulty: "Easy", Op: "+"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := repo.BySession(ctx, "s")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 1 || got[0].Timestamp.Before(before) {
		t.Errorf("expected a current timestamp, got %+v", got)
	}
}

func TestDefaultDBPath_UsesXDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("MATHADV_DB", filepath.Join(t.TempDir(), "ignored.db"))

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dataHome, "mathadv", "mathadv.db"); p != want {
		t.Errorf("path = %q, want %q", p, want)
	}
}
