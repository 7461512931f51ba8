package schedule

import "time"

// GenerateDateRange returns dayCount consecutive calendar days starting at
// today's midnight in loc.
func GenerateDateRange(today time.Time, dayCount int, loc *time.Location) ([]time.Time, error) {
	if dayCount < 1 {
		return nil, ErrInvalidDayCount
	}
	if loc == nil {
		loc = time.Local
	}

	t := today.In(loc)
	dates := make([]time.Time, dayCount)
	for i := range dates {
		dates[i] = time.Date(t.Year(), t.Month(), t.Day()+i, 0, 0, 0, 0, loc)
	}
	return dates, nil
}
