package schedule

import (
	"fmt"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/pkg/errs"
)

var (
	ErrInvalidTimeFormat = errs.New("invalid opening/closing time format")
	ErrInvalidWindow     = errs.New("opening time must be before closing time")
	ErrInvalidInterval   = errs.New("slot interval must be positive")
	ErrInvalidDayCount   = errs.New("day count must be at least 1")
)

// ClockTime is an hour:minute of the day without a date.
type ClockTime struct {
	hour   int
	minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, errs.Wrapf(ErrInvalidTimeFormat, "parse %q: %v", s, err)
	}
	return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (c ClockTime) Hour() int   { return c.hour }
func (c ClockTime) Minute() int { return c.minute }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// On anchors the clock time to date's calendar day in loc, zero seconds.
func (c ClockTime) On(date time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.hour, c.minute, 0, 0, loc)
}

// Window is a daily opening window divided into fixed-length slots.
type Window struct {
	opening  ClockTime
	closing  ClockTime
	interval time.Duration
	loc      *time.Location
}

func NewWindow(opening, closing string, intervalMinutes int, loc *time.Location) (Window, error) {
	open, err := ParseClockTime(opening)
	if err != nil {
		return Window{}, err
	}
	closeAt, err := ParseClockTime(closing)
	if err != nil {
		return Window{}, err
	}
	if intervalMinutes <= 0 {
		return Window{}, ErrInvalidInterval
	}
	if loc == nil {
		loc = time.Local
	}

	return Window{
		opening:  open,
		closing:  closeAt,
		interval: time.Duration(intervalMinutes) * time.Minute,
		loc:      loc,
	}, nil
}

func (w Window) Opening() ClockTime { return w.opening }
func (w Window) Closing() ClockTime { return w.closing }
func (w Window) Interval() time.Duration { return w.interval }
func (w Window) Location() *time.Location { return w.loc }

// Bounds returns opening and closing anchored to referenceDate.
func (w Window) Bounds(referenceDate time.Time) (time.Time, time.Time, error) {
	open := w.opening.On(referenceDate, w.loc)
	closeAt := w.closing.On(referenceDate, w.loc)
	if !open.Before(closeAt) {
		return time.Time{}, time.Time{}, errs.Wrapf(ErrInvalidWindow, "opening %s, closing %s", w.opening, w.closing)
	}
	return open, closeAt, nil
}

// GenerateSlots returns the ordered slot grid for referenceDate's day.
// A trailing remainder shorter than one interval is dropped.
func (w Window) GenerateSlots(referenceDate time.Time) ([]booking.TimeSlot, error) {
	open, closeAt, err := w.Bounds(referenceDate)
	if err != nil {
		return nil, err
	}

	slots := make([]booking.TimeSlot, 0, int(closeAt.Sub(open)/w.interval))
	for cursor := open; ; {
		next := cursor.Add(w.interval)
		if next.After(closeAt) {
			break
		}
		slot, err := booking.NewTimeSlot(cursor, next)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
		cursor = next
	}

	return slots, nil
}

// Validate checks the window against a reference day, so a misconfigured
// window fails at startup instead of on the first timetable request.
func (w Window) Validate(referenceDate time.Time) error {
	_, _, err := w.Bounds(referenceDate)
	return err
}
