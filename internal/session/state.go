package session

import (
	"time"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/puzzle"
	"github.com/abhisek/mathadventures/internal/tracker"
)

// DefaultMaxQuestions is the number of questions in a full session.
const DefaultMaxQuestions = 15

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing the result of the last answer
	PhaseEnded                 // Question limit reached or learner quit
)

// State tracks the runtime state of a session. It is owned by a single
// driver and is not safe for concurrent use.
type State struct {
	// Name is the learner's display name.
	Name string

	// SessionID is the UUID for this session.
	SessionID string

	// Tracker holds every attempt made so far.
	Tracker *tracker.Tracker

	// Engine decides the tier for each next question.
	Engine *adaptive.Engine

	// Puzzles generates questions.
	Puzzles puzzle.Source

	// StartTier is the tier the session began at.
	StartTier difficulty.Tier

	// CurrentTier is the tier of the next (or current) question.
	CurrentTier difficulty.Tier

	// MaxQuestions caps the session length.
	MaxQuestions int

	// Served counts questions shown so far.
	Served int

	// CurrentPuzzle is the question awaiting an answer (nil between questions).
	CurrentPuzzle *puzzle.Puzzle

	// QuestionStartTime is when CurrentPuzzle was shown.
	QuestionStartTime time.Time

	// LastOutcome is the result of the most recent answer.
	LastOutcome *Outcome

	// StartTime is when the session began.
	StartTime time.Time

	// Quit is true when the learner ended the session early.
	Quit bool

	// Phase is the current session phase.
	Phase Phase
}

// Options configures NewState.
type Options struct {
	Name         string
	SessionID    string
	StartTier    difficulty.Tier
	MaxQuestions int
	Engine       *adaptive.Engine
	Puzzles      puzzle.Source
	Now          time.Time
}

// NewState creates a session ready to serve its first question.
func NewState(opts Options) *State {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	maxQ := opts.MaxQuestions
	if maxQ < 1 {
		maxQ = DefaultMaxQuestions
	}
	engine := opts.Engine
	if engine == nil {
		engine = adaptive.New(adaptive.DefaultConfig())
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &State{
		Name:         name,
		SessionID:    opts.SessionID,
		Tracker:      tracker.New(),
		Engine:       engine,
		Puzzles:      opts.Puzzles,
		StartTier:    opts.StartTier,
		CurrentTier:  opts.StartTier,
		MaxQuestions: maxQ,
		StartTime:    now,
		Phase:        PhaseActive,
	}
}

// DefaultName is used when the learner leaves the name blank.
const DefaultName = "Learner"
