package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCapacities(caps map[string]int) func(string) int {
	return func(passID string) int { return caps[passID] }
}

func TestRemainingCapacity(t *testing.T) {
	l := New(testCapacities(map[string]int{"first-tracks": 12, "the-gate": 1}))

	t.Run("untouched pair equals full capacity", func(t *testing.T) {
		assert.Equal(t, 12, l.RemainingCapacity("first-tracks", "2024-06-01"))
		assert.Equal(t, 1, l.RemainingCapacity("the-gate", "2024-06-01"))
	})

	t.Run("unknown pass type has zero capacity", func(t *testing.T) {
		assert.Equal(t, 0, l.RemainingCapacity("heli-drop", "2024-06-01"))
	})

	t.Run("decrements by one per reservation", func(t *testing.T) {
		require.NoError(t, l.Reserve("first-tracks", []string{"2024-06-01"}))
		assert.Equal(t, 11, l.RemainingCapacity("first-tracks", "2024-06-01"))

		for i := 0; i < 3; i++ {
			require.NoError(t, l.Reserve("first-tracks", []string{"2024-06-01"}))
		}
		assert.Equal(t, 8, l.RemainingCapacity("first-tracks", "2024-06-01"))

		// Other dates are untouched.
		assert.Equal(t, 12, l.RemainingCapacity("first-tracks", "2024-06-02"))
	})

	t.Run("clamped at zero when counts exceed a shrunk capacity", func(t *testing.T) {
		caps := map[string]int{"flex": 3}
		l := New(testCapacities(caps))
		require.NoError(t, l.Reserve("flex", []string{"2024-06-01"}))
		require.NoError(t, l.Reserve("flex", []string{"2024-06-01"}))

		// Capacity reconfigured below the already-recorded count.
		caps["flex"] = 1
		assert.Equal(t, 0, l.RemainingCapacity("flex", "2024-06-01"))
	})
}

func TestIsAvailable(t *testing.T) {
	l := New(testCapacities(map[string]int{"the-gate": 1}))

	t.Run("empty date set is vacuously available", func(t *testing.T) {
		assert.True(t, l.IsAvailable("the-gate", nil))
		assert.True(t, l.IsAvailable("unknown", nil))
	})

	t.Run("true only when every date has room", func(t *testing.T) {
		require.NoError(t, l.Reserve("the-gate", []string{"2024-06-01"}))
		assert.False(t, l.IsAvailable("the-gate", []string{"2024-06-01"}))
		assert.True(t, l.IsAvailable("the-gate", []string{"2024-06-02"}))
		assert.False(t, l.IsAvailable("the-gate", []string{"2024-06-02", "2024-06-01"}))
	})
}

func TestReserve(t *testing.T) {
	t.Run("the-gate single slot scenario", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"the-gate": 1}))
		require.NoError(t, l.Reserve("the-gate", []string{"2024-06-01"}))

		assert.Equal(t, 0, l.RemainingCapacity("the-gate", "2024-06-01"))
		assert.False(t, l.IsAvailable("the-gate", []string{"2024-06-01"}))

		err := l.Reserve("the-gate", []string{"2024-06-01"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCapacityExceeded))
	})

	t.Run("all-or-nothing across dates", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"the-gate": 1}))
		require.NoError(t, l.Reserve("the-gate", []string{"2024-06-02"}))

		err := l.Reserve("the-gate", []string{"2024-06-01", "2024-06-02", "2024-06-03"})
		require.ErrorIs(t, err, ErrCapacityExceeded)

		// The dates that had room must not have been incremented.
		assert.Equal(t, 1, l.RemainingCapacity("the-gate", "2024-06-01"))
		assert.Equal(t, 1, l.RemainingCapacity("the-gate", "2024-06-03"))
	})

	t.Run("duplicate dates in one call count once", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"the-gate": 1}))
		require.NoError(t, l.Reserve("the-gate", []string{"2024-06-01", "2024-06-01"}))

		// A repeated date must not drive the count past capacity.
		assert.Equal(t, map[string]int{"the-gate": 1}, l.Occupancy("2024-06-01"))
		assert.Equal(t, 0, l.RemainingCapacity("the-gate", "2024-06-01"))

		err := l.Reserve("the-gate", []string{"2024-06-01", "2024-06-01"})
		require.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, map[string]int{"the-gate": 1}, l.Occupancy("2024-06-01"))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"first-tracks": 12}))
		err := l.Reserve("first-tracks", []string{"06/01/2024"})
		require.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestAvailableWithinHorizon(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sold out across the whole horizon", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"the-gate": 1}))
		for i := 0; i < DefaultHorizonDays; i++ {
			date := start.AddDate(0, 0, i).Format(DateLayout)
			require.NoError(t, l.Reserve("the-gate", []string{date}))
		}
		assert.False(t, l.AvailableWithinHorizon("the-gate", start, DefaultHorizonDays))
	})

	t.Run("one open day inside the horizon is enough", func(t *testing.T) {
		l := New(testCapacities(map[string]int{"the-gate": 1}))
		for i := 0; i < DefaultHorizonDays-1; i++ {
			date := start.AddDate(0, 0, i).Format(DateLayout)
			require.NoError(t, l.Reserve("the-gate", []string{date}))
		}
		assert.True(t, l.AvailableWithinHorizon("the-gate", start, DefaultHorizonDays))
	})

	t.Run("zero capacity pass is never available", func(t *testing.T) {
		l := New(testCapacities(map[string]int{}))
		assert.False(t, l.AvailableWithinHorizon("waitlist-only", start, DefaultHorizonDays))
	})
}

func TestOccupancy(t *testing.T) {
	l := New(testCapacities(map[string]int{"first-tracks": 12, "the-gate": 1}))
	require.NoError(t, l.Reserve("first-tracks", []string{"2024-06-01"}))
	require.NoError(t, l.Reserve("first-tracks", []string{"2024-06-01"}))
	require.NoError(t, l.Reserve("the-gate", []string{"2024-06-01"}))

	occ := l.Occupancy("2024-06-01")
	assert.Equal(t, map[string]int{"first-tracks": 2, "the-gate": 1}, occ)

	// The returned map is a copy.
	occ["first-tracks"] = 99
	assert.Equal(t, 10, l.RemainingCapacity("first-tracks", "2024-06-01"))
}

func TestPruneBefore(t *testing.T) {
	l := New(testCapacities(map[string]int{"first-tracks": 12}))
	require.NoError(t, l.Reserve("first-tracks", []string{"2024-05-30", "2024-05-31", "2024-06-01"}))

	removed := l.PruneBefore("2024-06-01")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 11, l.RemainingCapacity("first-tracks", "2024-06-01"))
	assert.Equal(t, 12, l.RemainingCapacity("first-tracks", "2024-05-31"))
}
