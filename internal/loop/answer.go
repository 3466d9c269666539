package loop

import "strings"

// Answer classifies a line of user input.
type Answer int

const (
	AnswerUnknown Answer = iota
	AnswerYes
	AnswerNo
)

// String returns a human-readable form of the answer.
func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "unknown"
	}
}

// ParseAnswer converts free-form input into an Answer. Matching is exact on
// the trimmed token, case-insensitive: "y"/"yes" and "n"/"no". Anything else
// is AnswerUnknown and should trigger a re-prompt.
func ParseAnswer(line string) Answer {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return AnswerYes
	case "n", "no":
		return AnswerNo
	default:
		return AnswerUnknown
	}
}
