//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(at(9, 0), at(10, 0))
		require.NoError(t, err)

		assert.Equal(t, at(9, 0), slot.Start())
		assert.Equal(t, at(10, 0), slot.End())
		assert.Equal(t, time.Hour, slot.Duration())
		assert.Equal(t, "[2026-03-02T09:00:00Z,2026-03-02T10:00:00Z)", slot.String())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(9, 0), at(9, 0))
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(10, 0), at(9, 0))
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     [2]time.Time
		expected bool
	}{
		{name: "identical", a: [2]time.Time{at(9, 0), at(10, 0)}, b: [2]time.Time{at(9, 0), at(10, 0)}, expected: true},
		{name: "partial overlap", a: [2]time.Time{at(9, 0), at(10, 0)}, b: [2]time.Time{at(9, 30), at(10, 30)}, expected: true},
		{name: "containment", a: [2]time.Time{at(9, 0), at(12, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, expected: true},
		{name: "touching end to start", a: [2]time.Time{at(9, 0), at(10, 0)}, b: [2]time.Time{at(10, 0), at(11, 0)}, expected: false},
		{name: "disjoint", a: [2]time.Time{at(9, 0), at(10, 0)}, b: [2]time.Time{at(13, 0), at(14, 0)}, expected: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustSlot(t, c.a[0], c.a[1])
			b := mustSlot(t, c.b[0], c.b[1])

			assert.Equal(t, c.expected, booking.Overlaps(a, b))
			assert.Equal(t, booking.Overlaps(a, b), booking.Overlaps(b, a), "overlap must be symmetric")
			assert.Equal(t, c.expected, a.Overlaps(b))
		})
	}
}

func TestTimeSlotEqualAcrossLocations(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	slot := mustSlot(t, at(9, 0), at(10, 0))

	assert.True(t, slot.Equal(slot.In(tokyo)))
	assert.True(t, booking.Overlaps(slot, slot.In(tokyo)))
}
