// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// CombineDateTime attaches an "HH:MM" wall-clock time to a calendar date.
// Booking dates and times are stored separately, so comparisons against
// "now" must always go through this.
func CombineDateTime(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return BeginningOfDay(date)
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, time.Local)
}
