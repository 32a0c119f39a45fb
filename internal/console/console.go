// Package console runs a session as a plain line-oriented dialogue on any
// reader and writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/puzzle"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/ui/theme"
)

// Options configures a console session.
type Options struct {
	// Name skips the name prompt when set.
	Name string

	// StartTier is used when HasStartTier is true; otherwise the learner
	// picks from a menu.
	StartTier    difficulty.Tier
	HasStartTier bool

	MaxQuestions int
	SessionID    string
	Engine       *adaptive.Engine
	Puzzles      puzzle.Source
	Reporter     session.Reporter

	// Now defaults to time.Now.
	Now func() time.Time
}

// Driver reads answers from in and writes the dialogue to out. Warnings go
// to errOut.
type Driver struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	opts   Options

	warnedSink bool
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	incorrectStyle   = lipgloss.NewStyle().Foreground(theme.Error)
	recommendedStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

// New creates a Driver.
func New(in io.Reader, out, errOut io.Writer, opts Options) *Driver {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		opts:   opts,
	}
}

// Run plays one session to completion and returns its summary. Reaching the
// end of input ends the session as if the learner had quit.
func (d *Driver) Run(ctx context.Context) (*session.Summary, error) {
	d.println(strings.Repeat("=", 50))
	d.println("Welcome to Math Adventures - Adaptive Practice!")

	name := d.opts.Name
	if name == "" {
		line, err := d.prompt("Enter your name: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read name: %w", err)
		}
		name = strings.TrimSpace(line)
	}
	if name == "" {
		name = session.DefaultName
	}
	d.printf("Hi %s! Let's practice some math.\n\n", name)

	tier := d.opts.StartTier
	if !d.opts.HasStartTier {
		var err error
		tier, err = d.chooseTier()
		if err != nil {
			return nil, err
		}
	}

	state := session.NewState(session.Options{
		Name:         name,
		SessionID:    d.opts.SessionID,
		StartTier:    tier,
		MaxQuestions: d.opts.MaxQuestions,
		Engine:       d.opts.Engine,
		Puzzles:      d.opts.Puzzles,
		Now:          d.opts.Now(),
	})
	d.opts.Reporter.Started(state)

	d.printf("\nYou will get up to %d questions. Type 'q' to quit early.\n\n", state.MaxQuestions)

	if err := d.loop(ctx, state); err != nil {
		return nil, err
	}

	sum := session.BuildSummary(state, d.opts.Now())
	d.opts.Reporter.Finished(state, sum)
	d.printSummary(sum)
	return sum, nil
}

func (d *Driver) loop(ctx context.Context, state *session.State) error {
	for {
		if err := ctx.Err(); err != nil {
			session.End(state, true)
			return nil
		}

		p := session.NextPuzzle(state, d.opts.Now())
		if p == nil {
			return nil
		}

		d.println(strings.Repeat("-", 40))
		d.printf("Question %d (Difficulty: %s)\n", state.Served, p.Tier)
		d.println("Solve:", p.Text)

		input, err := d.prompt("Your answer (or 'q' to quit): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read answer: %w", err)
		}
		if (errors.Is(err, io.EOF) && strings.TrimSpace(input) == "") || session.IsQuitInput(input) {
			d.println("Ending session early.")
			d.println()
			session.End(state, true)
			return nil
		}
		elapsed := d.opts.Now().Sub(state.QuestionStartTime)

		out := session.HandleAnswer(state, input, elapsed)
		if out.Invalid {
			d.println(incorrectStyle.Render("Invalid input. Counting as incorrect."))
		}
		if out.Correct {
			d.println(correctStyle.Render("Correct!"))
		} else {
			d.println(incorrectStyle.Render(fmt.Sprintf("Incorrect. The correct answer was %d.", out.Puzzle.Answer)))
		}
		d.printf("Time taken: %.1f seconds\n", out.Elapsed.Seconds())

		if err := d.opts.Reporter.Answered(ctx, state, out, d.opts.Now()); err != nil && !d.warnedSink {
			fmt.Fprintf(d.errOut, "warning: %v (the session continues without logging)\n", err)
			d.warnedSink = true
		}
	}
}

func (d *Driver) chooseTier() (difficulty.Tier, error) {
	d.println("Choose starting difficulty:")
	for i, t := range difficulty.All() {
		d.printf("%d) %s\n", i+1, t)
	}
	for {
		line, err := d.prompt("Enter 1/2/3: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return difficulty.Easy, fmt.Errorf("read starting difficulty: %w", err)
		}
		switch choice := strings.TrimSpace(line); choice {
		case "1", "2", "3":
			t, _ := difficulty.Parse(choice)
			return t, nil
		}
		if err != nil {
			return difficulty.Easy, fmt.Errorf("read starting difficulty: %w", err)
		}
		d.println("Invalid choice, try again.")
	}
}

func (d *Driver) printSummary(sum *session.Summary) {
	d.println()
	d.println(strings.Repeat("=", 50))
	d.println("Session Summary")
	d.printf("Total questions: %d\n", sum.TotalQuestions)
	d.printf("Overall accuracy: %.1f%%\n", sum.Accuracy*100)
	d.printf("Average time per question: %.1f seconds\n", sum.AverageTime.Seconds())

	if len(sum.Breakdown) > 0 {
		d.println()
		d.println("Breakdown by difficulty:")
		d.printf("%-10s %-8s %-12s %-12s\n", "Level", "Count", "Accuracy", "Avg Time (s)")
		for _, r := range sum.Breakdown {
			d.printf("%-10s %-8d %6.1f%% %12.1f\n", r.Tier, r.Count, r.Accuracy*100, r.AverageTime.Seconds())
		}
	}

	if sum.Trend != nil {
		d.println()
		d.println("Progress trend (first half vs second half):")
		d.printf("First half  - %s\n", halfLine(sum.Trend.First.Count, sum.Trend.First.Accuracy, sum.Trend.First.AverageTime))
		d.printf("Second half - %s\n", halfLine(sum.Trend.Second.Count, sum.Trend.Second.Accuracy, sum.Trend.Second.AverageTime))
	}

	d.println()
	d.printf("Recommended starting level for next time: %s\n", recommendedStyle.Render(sum.Recommended.String()))
	d.println("Thanks for playing, keep practicing!")
}

func halfLine(count int, acc float64, avg time.Duration) string {
	return fmt.Sprintf("%d questions, accuracy %.1f%%, avg time %.1fs", count, acc*100, avg.Seconds())
}

// prompt writes label and reads one line without its terminator. A final
// line without a newline is returned together with io.EOF.
func (d *Driver) prompt(label string) (string, error) {
	fmt.Fprint(d.out, label)
	line, err := d.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func (d *Driver) println(a ...any) {
	fmt.Fprintln(d.out, a...)
}

func (d *Driver) printf(format string, a ...any) {
	fmt.Fprintf(d.out, format, a...)
}
