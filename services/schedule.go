package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Candidate start times are quoted on a fixed half-hour grid regardless
// of service duration; a 70-minute service still only starts on :00/:30.
const SlotStepMinutes = 30

// ClosedMarker is the opening-hours value meaning the store does not
// open at all on that weekday.
const ClosedMarker = "휴무"

const (
	// DefaultHolidayReason is reported when a holiday row has no reason.
	DefaultHolidayReason = "휴무일"
	// RegularClosureReason is reported for weekly closed days.
	RegularClosureReason = "정기 휴무"
)

// MinCancelLead is the minimum gap between "now" and a booking's start
// for a customer-initiated cancellation.
const MinCancelLead = 24 * time.Hour

var dayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// DayKey returns the weekday key (sun..sat) used in opening-hours maps.
func DayKey(date time.Time) string {
	return dayKeys[int(date.Weekday())]
}

// TimeRange is a half-open [Start, End) interval in minutes of day.
type TimeRange struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Intervals
// that merely touch at a boundary do not overlap: a booking ending at
// 11:00 is compatible with one starting at 11:00.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// ParseClock converts "HH:MM" into a minute-of-day value.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	return hour*60 + minute, nil
}

// FormatClock renders a minute-of-day value as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseHoursRange splits an opening-hours value like "10:00-20:00" into
// open and close minutes of day. Close must follow open; overnight
// ranges are not modeled.
func ParseHoursRange(hours string) (open, close int, err error) {
	parts := strings.Split(hours, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid opening hours %q", hours)
	}
	open, err = ParseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	close, err = ParseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	if close <= open {
		return 0, 0, fmt.Errorf("invalid opening hours %q", hours)
	}
	return open, close, nil
}

// BuildSlots walks candidate start minutes from open to close-duration
// inclusive on the fixed grid and keeps every candidate whose
// [start, start+duration) interval clears all occupied intervals.
// Results are ascending "HH:MM" strings.
func BuildSlots(open, close, duration int, occupied []TimeRange) []string {
	slots := []string{}
	for start := open; start+duration <= close; start += SlotStepMinutes {
		candidate := TimeRange{Start: start, End: start + duration}
		taken := false
		for _, booked := range occupied {
			if candidate.Overlaps(booked) {
				taken = true
				break
			}
		}
		if !taken {
			slots = append(slots, FormatClock(start))
		}
	}
	return slots
}

// CanCancel reports whether a booking starting at start may still be
// cancelled by the customer at the given moment.
func CanCancel(start, now time.Time) bool {
	return start.Sub(now) >= MinCancelLead
}
