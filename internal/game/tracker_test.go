package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		min     int
		max     int
		wantErr string
	}{
		{
			name: "simple range",
			min:  1,
			max:  10,
		},
		{
			name: "single value range",
			min:  5,
			max:  5,
		},
		{
			name: "zero lower bound",
			min:  0,
			max:  100,
		},
		{
			name: "largest allowed upper bound",
			min:  0,
			max:  999_999_999,
		},
		{
			name:    "empty range",
			min:     10,
			max:     5,
			wantErr: "range cannot be empty",
		},
		{
			name:    "negative lower bound",
			min:     -1,
			max:     5,
			wantErr: "min cannot be negative",
		},
		{
			name:    "upper bound too large",
			min:     0,
			max:     1_000_000_000,
			wantErr: "max must be less than 1000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, err := New(tt.min, tt.max)
			if tt.wantErr != "" {
				require.Error(t, err)
				var rangeErr *InvalidRangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, tracker)
				return
			}
			require.NoError(t, err)
			low, high := tracker.Bounds()
			assert.Equal(t, tt.min, low)
			assert.Equal(t, tt.max, high)
			assert.Equal(t, tt.min == tt.max, tracker.Solved())
		})
	}
}

func TestUpTo(t *testing.T) {
	t.Parallel()

	tracker, err := UpTo(100)
	require.NoError(t, err)

	low, high := tracker.Bounds()
	assert.Equal(t, 1, low)
	assert.Equal(t, 100, high)

	_, err = UpTo(0)
	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestChoicesIdempotent(t *testing.T) {
	t.Parallel()

	tracker, err := New(1, 10)
	require.NoError(t, err)

	first, err := tracker.Choices()
	require.NoError(t, err)
	second, err := tracker.Choices()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, tracker.Progress(), tracker.Progress())
}

// TestWorkedExample walks the canonical 1..10 game: no, yes, no finds 7.
func TestWorkedExample(t *testing.T) {
	t.Parallel()

	tracker, err := New(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tracker.Progress())

	choices, err := tracker.Choices()
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 1, Max: 5}, choices)

	require.NoError(t, tracker.No())
	low, high := tracker.Bounds()
	assert.Equal(t, 6, low)
	assert.Equal(t, 10, high)

	choices, err = tracker.Choices()
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 6, Max: 8}, choices)

	require.NoError(t, tracker.Yes())
	low, high = tracker.Bounds()
	assert.Equal(t, 6, low)
	assert.Equal(t, 7, high)

	choices, err = tracker.Choices()
	require.NoError(t, err)
	assert.Equal(t, Range{Min: 6, Max: 6}, choices)
	assert.True(t, choices.Single())

	require.NoError(t, tracker.No())
	require.True(t, tracker.Solved())

	secret, err := tracker.Secret()
	require.NoError(t, err)
	assert.Equal(t, 7, secret)
	assert.Equal(t, 1.0, tracker.Progress())
}

func TestSolvedContract(t *testing.T) {
	t.Parallel()

	tracker, err := New(5, 5)
	require.NoError(t, err)
	require.True(t, tracker.Solved())

	_, err = tracker.Choices()
	assert.ErrorIs(t, err, ErrSolved)
	assert.ErrorIs(t, tracker.Yes(), ErrSolved)
	assert.ErrorIs(t, tracker.No(), ErrSolved)

	secret, err := tracker.Secret()
	require.NoError(t, err)
	assert.Equal(t, 5, secret)
	assert.Equal(t, 1.0, tracker.Progress())
}

func TestSecretBeforeSolved(t *testing.T) {
	t.Parallel()

	tracker, err := New(1, 10)
	require.NoError(t, err)

	_, err = tracker.Secret()
	assert.ErrorIs(t, err, ErrNotSolved)
}

// TestTermination answers with fixed policies and checks the range collapses
// within ceil(log2(size)) steps for each.
func TestTermination(t *testing.T) {
	t.Parallel()

	policies := map[string]func(step int) bool{
		"always yes":  func(int) bool { return true },
		"always no":   func(int) bool { return false },
		"alternating": func(step int) bool { return step%2 == 0 },
	}

	for name, policy := range policies {
		t.Run(name, func(t *testing.T) {
			for _, size := range []int{1, 2, 3, 7, 10, 64, 1000} {
				tracker, err := New(1, size)
				require.NoError(t, err)

				maxSteps := int(math.Ceil(math.Log2(float64(size))))
				steps := 0
				for !tracker.Solved() {
					require.LessOrEqual(t, steps+1, maxSteps, "size %d", size)
					if policy(steps) {
						require.NoError(t, tracker.Yes())
					} else {
						require.NoError(t, tracker.No())
					}
					steps++
				}
			}
		})
	}
}

// TestProgressMonotonic checks the progress contract over whole games:
// starts at 0, never decreases, never leaves [0, 1], ends at exactly 1.
func TestProgressMonotonic(t *testing.T) {
	t.Parallel()

	for _, size := range []int{2, 3, 10, 100, 999} {
		tracker, err := New(1, size)
		require.NoError(t, err)
		assert.Equal(t, 0.0, tracker.Progress(), "size %d", size)

		prev := 0.0
		step := 0
		for !tracker.Solved() {
			if step%3 == 0 {
				require.NoError(t, tracker.Yes())
			} else {
				require.NoError(t, tracker.No())
			}
			step++

			p := tracker.Progress()
			assert.False(t, math.IsNaN(p))
			assert.GreaterOrEqual(t, p, prev, "size %d step %d", size, step)
			assert.LessOrEqual(t, p, 1.0)
			prev = p
		}
		assert.Equal(t, 1.0, tracker.Progress())
	}
}

// TestConvergence plays honestly for every target in the initial range and
// checks the tracker lands on exactly that target.
func TestConvergence(t *testing.T) {
	t.Parallel()

	const low, high = 3, 80
	for target := low; target <= high; target++ {
		tracker, err := New(low, high)
		require.NoError(t, err)

		for !tracker.Solved() {
			choices, err := tracker.Choices()
			require.NoError(t, err)
			require.Positive(t, choices.Size())

			if choices.Contains(target) {
				require.NoError(t, tracker.Yes())
			} else {
				require.NoError(t, tracker.No())
			}
		}

		secret, err := tracker.Secret()
		require.NoError(t, err)
		assert.Equal(t, target, secret)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := Range{Min: 6, Max: 8}
	assert.Equal(t, 3, r.Size())
	assert.False(t, r.Single())
	assert.True(t, r.Contains(6))
	assert.True(t, r.Contains(8))
	assert.False(t, r.Contains(5))
	assert.False(t, r.Contains(9))
	assert.Equal(t, "[6, 8]", r.String())

	single := Range{Min: 4, Max: 4}
	assert.Equal(t, 1, single.Size())
	assert.True(t, single.Single())
	assert.Equal(t, "[4]", single.String())
}
