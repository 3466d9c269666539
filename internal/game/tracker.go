// Package game implements the HiLo state machine: a closed integer range
// narrowed by yes/no answers until a single candidate remains.
//
// Only Yes and No mutate state. Choices and Progress are stable between
// answers and can be called repeatedly with identical results.
package game

import (
	"errors"
	"fmt"
	"math"
)

// MaxBound is the exclusive upper limit for range bounds.
const MaxBound = 1_000_000_000

// Sentinel errors for tracker contract violations. These indicate a driver
// bug (mutating after solving, or reading the secret before), not a
// user-facing condition; callers should treat them as fatal.
var (
	ErrSolved    = errors.New("problem has been solved already")
	ErrNotSolved = errors.New("problem not solved yet")
)

// InvalidRangeError reports a constructor range that was rejected.
type InvalidRangeError struct {
	Min     int
	Max     int
	Message string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]: %s", e.Min, e.Max, e.Message)
}

// Range is a closed interval of integers.
type Range struct {
	Min int
	Max int
}

// Size returns the number of integers in the range.
func (r Range) Size() int { return r.Max - r.Min + 1 }

// Single reports whether the range holds exactly one value.
func (r Range) Single() bool { return r.Min == r.Max }

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool { return r.Min <= v && v <= r.Max }

func (r Range) String() string {
	if r.Single() {
		return fmt.Sprintf("[%d]", r.Min)
	}
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Tracker narrows a candidate range by floor-midpoint bisection. The secret
// is pinned down in at most ceil(log2(size)) answers.
type Tracker struct {
	low  int
	high int
	size int
}

// New creates a Tracker over [min, max]. The range must be non-empty,
// non-negative, and bounded above by MaxBound.
func New(min, max int) (*Tracker, error) {
	switch {
	case min > max:
		return nil, &InvalidRangeError{Min: min, Max: max, Message: "range cannot be empty"}
	case min < 0:
		return nil, &InvalidRangeError{Min: min, Max: max, Message: "min cannot be negative"}
	case max >= MaxBound:
		return nil, &InvalidRangeError{Min: min, Max: max, Message: "max must be less than 1000000000"}
	}
	return &Tracker{low: min, high: max, size: max - min + 1}, nil
}

// UpTo creates a Tracker over [1, max].
func UpTo(max int) (*Tracker, error) {
	return New(1, max)
}

func (t *Tracker) midpoint() int {
	return (t.low + t.high) / 2
}

// Solved reports whether the range has collapsed to a single value. A tracker
// constructed over a single-value range is solved with no answers at all.
func (t *Tracker) Solved() bool {
	return t.low == t.high
}

// Bounds returns the current lower and upper bounds, both inclusive.
func (t *Tracker) Bounds() (low, high int) {
	return t.low, t.high
}

// Choices returns the next question as a range: is the secret within
// [low, midpoint]? The returned range is never empty. Returns ErrSolved once
// the tracker is solved.
func (t *Tracker) Choices() (Range, error) {
	if t.Solved() {
		return Range{}, ErrSolved
	}
	return Range{Min: t.low, Max: t.midpoint()}, nil
}

// Yes records that the secret is within the proposed sub-range, moving the
// upper bound down to the midpoint. Returns ErrSolved once solved.
func (t *Tracker) Yes() error {
	if t.Solved() {
		return ErrSolved
	}
	t.high = t.midpoint()
	return nil
}

// No records that the secret is outside the proposed sub-range, moving the
// lower bound past the midpoint. Returns ErrSolved once solved.
func (t *Tracker) No() error {
	if t.Solved() {
		return ErrSolved
	}
	t.low = t.midpoint() + 1
	return nil
}

// Progress returns a completion metric: exactly 0 at the unsolved initial
// state, exactly 1 once solved, strictly increasing after each answer. The
// metric is the log-ratio of the remaining range to the initial range.
// Unsolved states imply size >= 2, so the denominator is never log(1).
func (t *Tracker) Progress() float64 {
	if t.Solved() {
		return 1.0
	}
	return 1.0 - math.Log(float64(t.high-t.low+1))/math.Log(float64(t.size))
}

// Secret returns the solved value. Returns ErrNotSolved while more than one
// candidate remains.
func (t *Tracker) Secret() (int, error) {
	if !t.Solved() {
		return 0, ErrNotSolved
	}
	return t.low, nil
}
