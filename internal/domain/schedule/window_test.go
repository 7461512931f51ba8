//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2026, 3, 2, 14, 37, 12, 0, time.UTC)

func slotStrings(slots []booking.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func mustWindow(t *testing.T, opening, closing string, interval int) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(opening, closing, interval, time.UTC)
	require.NoError(t, err)
	return w
}

func TestGenerateSlots(t *testing.T) {
	t.Run("default window yields eight hourly slots", func(t *testing.T) {
		slots, err := mustWindow(t, "09:00", "17:00", 60).GenerateSlots(refDate)
		require.NoError(t, err)
		require.Len(t, slots, 8)

		for i, s := range slots {
			assert.Equal(t, time.Hour, s.Duration())
			if i > 0 {
				assert.True(t, slots[i-1].End().Equal(s.Start()), "slots must be contiguous")
			}
		}
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), slots[0].Start())
		assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), slots[7].End())
	})

	t.Run("trailing remainder is dropped", func(t *testing.T) {
		slots, err := mustWindow(t, "09:00", "10:30", 60).GenerateSlots(refDate)
		require.NoError(t, err)

		expected := []string{"[2026-03-02T09:00:00Z,2026-03-02T10:00:00Z)"}
		if diff := cmp.Diff(expected, slotStrings(slots)); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("window shorter than interval yields no slots", func(t *testing.T) {
		slots, err := mustWindow(t, "09:00", "09:50", 60).GenerateSlots(refDate)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("thirty minute interval", func(t *testing.T) {
		slots, err := mustWindow(t, "09:00", "10:30", 30).GenerateSlots(refDate)
		require.NoError(t, err)

		expected := []string{
			"[2026-03-02T09:00:00Z,2026-03-02T09:30:00Z)",
			"[2026-03-02T09:30:00Z,2026-03-02T10:00:00Z)",
			"[2026-03-02T10:00:00Z,2026-03-02T10:30:00Z)",
		}
		if diff := cmp.Diff(expected, slotStrings(slots)); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("opening equal to closing", func(t *testing.T) {
		_, err := mustWindow(t, "09:00", "09:00", 60).GenerateSlots(refDate)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("opening after closing", func(t *testing.T) {
		_, err := mustWindow(t, "17:00", "09:00", 60).GenerateSlots(refDate)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("anchors to the reference day in the window location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		w, err := schedule.NewWindow("09:00", "11:00", 60, tokyo)
		require.NoError(t, err)

		// 2026-03-02 20:00 UTC is 2026-03-03 05:00 in Tokyo.
		slots, err := w.GenerateSlots(time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, time.Date(2026, 3, 3, 9, 0, 0, 0, tokyo), slots[0].Start())
	})
}

func TestNewWindow(t *testing.T) {
	cases := []struct {
		name     string
		opening  string
		closing  string
		interval int
		errIs    error
	}{
		{name: "valid", opening: "09:00", closing: "17:00", interval: 60},
		{name: "unparseable opening", opening: "nine", closing: "17:00", interval: 60, errIs: schedule.ErrInvalidTimeFormat},
		{name: "unparseable closing", opening: "09:00", closing: "25:00", interval: 60, errIs: schedule.ErrInvalidTimeFormat},
		{name: "zero interval", opening: "09:00", closing: "17:00", interval: 0, errIs: schedule.ErrInvalidInterval},
		{name: "negative interval", opening: "09:00", closing: "17:00", interval: -15, errIs: schedule.ErrInvalidInterval},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := schedule.NewWindow(c.opening, c.closing, c.interval, time.UTC)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	c, err := schedule.ParseClockTime("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Hour())
	assert.Equal(t, 5, c.Minute())
	assert.Equal(t, "08:05", c.String())
}
