package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/thruflo/hilo/internal/game"
	"github.com/thruflo/hilo/internal/logging"
	"github.com/thruflo/hilo/internal/tui"
)

// progressBarWidth is the width of the optional styled progress bar.
const progressBarWidth = 40

// ExitReason indicates why the loop stopped.
type ExitReason int

const (
	ExitReasonUnknown  ExitReason = iota
	ExitReasonSolved              // Range collapsed to a single value
	ExitReasonEOF                 // Input exhausted before solving
	ExitReasonCanceled            // Context canceled
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonSolved:
		return "solved"
	case ExitReasonEOF:
		return "input exhausted"
	case ExitReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a loop execution.
type Result struct {
	Reason    ExitReason
	Questions int   // Answered questions; re-prompts are not counted
	Secret    int   // Valid only when Reason == ExitReasonSolved
	Err       error // Fatal tracker contract violation, if any
}

// Options holds dependencies for creating a Loop. This struct enables
// test-friendly construction with explicit input/output streams.
type Options struct {
	Tracker *game.Tracker
	Input   io.Reader
	Output  io.Writer
	Color   bool // Render a styled progress bar after each step
}

// Loop drives a Tracker against line-oriented input until the secret is
// known.
type Loop struct {
	tracker *game.Tracker
	in      *bufio.Scanner
	out     io.Writer
	color   bool
	log     *logging.Logger
}

// New creates a Loop from the given options.
func New(opts Options) *Loop {
	return &Loop{
		tracker: opts.Tracker,
		in:      bufio.NewScanner(opts.Input),
		out:     opts.Output,
		color:   opts.Color,
		log:     logging.With("component", "loop"),
	}
}

// Run executes the question loop until the tracker solves, input runs out,
// or ctx is canceled. The tracker's solved state is checked before every
// call into it; a contract error surfacing anyway is returned as Result.Err.
func (l *Loop) Run(ctx context.Context) Result {
	low, high := l.tracker.Bounds()
	fmt.Fprintf(l.out, "Playing HiLo between %d and %d.\n", low, high)

	questions := 0
	for !l.tracker.Solved() {
		if ctx.Err() != nil {
			return Result{Reason: ExitReasonCanceled, Questions: questions, Err: ctx.Err()}
		}

		choices, err := l.tracker.Choices()
		if err != nil {
			return Result{Reason: ExitReasonUnknown, Questions: questions, Err: err}
		}
		fmt.Fprint(l.out, tui.Question(choices))

		answer, ok := l.readAnswer()
		if !ok {
			return Result{Reason: ExitReasonEOF, Questions: questions}
		}

		if answer == AnswerYes {
			err = l.tracker.Yes()
		} else {
			err = l.tracker.No()
		}
		if err != nil {
			return Result{Reason: ExitReasonUnknown, Questions: questions, Err: err}
		}
		questions++

		low, high = l.tracker.Bounds()
		l.log.Debug("narrowed range", "answer", answer, "low", low, "high", high)

		progress := l.tracker.Progress()
		fmt.Fprintf(l.out, "I'm %s done.\n", tui.Percent(progress))
		if l.color {
			fmt.Fprintln(l.out, tui.Style(tui.ProgressBar(progress, progressBarWidth), tui.Dim))
		}
	}

	secret, err := l.tracker.Secret()
	if err != nil {
		return Result{Reason: ExitReasonUnknown, Questions: questions, Err: err}
	}
	fmt.Fprintf(l.out, "Your number is: %d\n", secret)
	return Result{Reason: ExitReasonSolved, Questions: questions, Secret: secret}
}

// readAnswer reads lines until a recognized yes/no token appears,
// re-prompting on anything else. ok is false once input is exhausted.
func (l *Loop) readAnswer() (answer Answer, ok bool) {
	for l.in.Scan() {
		if a := ParseAnswer(l.in.Text()); a != AnswerUnknown {
			return a, true
		}
		fmt.Fprint(l.out, "  yes or no? ")
	}
	return AnswerUnknown, false
}
