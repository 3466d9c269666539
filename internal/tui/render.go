// Package tui renders the game's terminal output: question prompts, the
// progress line, and ANSI styling when stdout is a real terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thruflo/hilo/internal/game"
)

// ANSI style codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Dim           = "\x1b[2m"
	FgRed         = "\x1b[31m"
	FgGreen       = "\x1b[32m"
	FgYellow      = "\x1b[33m"
	FgBrightGreen = "\x1b[92m"
)

// Question renders the prompt for a choice range. A single-value range asks
// about the value directly. The trailing space keeps the cursor on the
// prompt line.
func Question(r game.Range) string {
	if r.Single() {
		return fmt.Sprintf("Is your number %d? ", r.Min)
	}
	return fmt.Sprintf("Is your number between %d and %d? ", r.Min, r.Max)
}

// Percent formats a [0, 1] progress value as a whole percentage.
func Percent(progress float64) string {
	return fmt.Sprintf("%.0f%%", progress*100)
}

// ProgressBar renders a bar for a [0, 1] progress value.
// Returns a string like "[████████░░░░░░░░] 50%", or "" if width is too
// small to hold a bar.
func ProgressBar(progress float64, width int) string {
	if width < 10 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	barWidth := width - 7 // Space for "[] XXX%"
	filled := int(progress * float64(barWidth))
	empty := barWidth - filled

	bar := "[" +
		strings.Repeat("█", filled) +
		strings.Repeat("░", empty) +
		"]"

	return bar + fmt.Sprintf(" %3.0f%%", progress*100)
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// ColorEnabled reports whether styled output should be written to w, which
// requires w to be a terminal.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
