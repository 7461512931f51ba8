package booking

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Equal compares instants, so slots in different locations can be equal.
func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) In(loc *time.Location) TimeSlot {
	return TimeSlot{start: ts.start.In(loc), end: ts.end.In(loc)}
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Overlaps reports whether a and b share at least one instant.
// Touching endpoints do not overlap.
func Overlaps(a, b TimeSlot) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}

func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return Overlaps(ts, other)
}
