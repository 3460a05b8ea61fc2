package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "10:00", want: 600},
		{clock: "10:30", want: 630},
		{clock: "23:59", want: 1439},
		{clock: "24:00", wantErr: true},
		{clock: "10:60", wantErr: true},
		{clock: "1000", wantErr: true},
		{clock: "ab:cd", wantErr: true},
		{clock: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "10:30", FormatClock(630))
	assert.Equal(t, "19:00", FormatClock(1140))
}

func TestParseHoursRange(t *testing.T) {
	tests := []struct {
		hours     string
		wantOpen  int
		wantClose int
		wantErr   bool
	}{
		{hours: "10:00-20:00", wantOpen: 600, wantClose: 1200},
		{hours: "09:00-19:00", wantOpen: 540, wantClose: 1140},
		{hours: "10:00 - 20:00", wantOpen: 600, wantClose: 1200},
		{hours: "20:00-10:00", wantErr: true}, // no overnight wrap
		{hours: "10:00-10:00", wantErr: true},
		{hours: "10:00", wantErr: true},
		{hours: "휴무", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			open, close, err := ParseHoursRange(tt.hours)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantClose, close)
		})
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	tenToEleven := TimeRange{Start: 600, End: 660}

	tests := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{name: "identical", other: TimeRange{600, 660}, want: true},
		{name: "contained", other: TimeRange{610, 650}, want: true},
		{name: "containing", other: TimeRange{590, 670}, want: true},
		{name: "straddles start", other: TimeRange{570, 630}, want: true},
		{name: "straddles end", other: TimeRange{630, 690}, want: true},
		{name: "one minute before close", other: TimeRange{659, 690}, want: true},
		{name: "touching after", other: TimeRange{660, 720}, want: false},
		{name: "touching before", other: TimeRange{540, 600}, want: false},
		{name: "disjoint", other: TimeRange{700, 760}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tenToEleven.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(tenToEleven))
		})
	}
}

func TestBuildSlotsFullDay(t *testing.T) {
	// mon "10:00-20:00", 60 minute service, nothing booked:
	// 10:00 .. 19:00 on the half-hour grid.
	slots := BuildSlots(600, 1200, 60, nil)

	require.Len(t, slots, 19)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "10:30", slots[1])
	assert.Equal(t, "19:00", slots[18])

	// every slot fits inside the window and sits on the grid
	for _, slot := range slots {
		start, err := ParseClock(slot)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, start, 600)
		assert.LessOrEqual(t, start+60, 1200)
		assert.Zero(t, (start-600)%SlotStepMinutes)
	}
}

func TestBuildSlotsWithBooking(t *testing.T) {
	// an existing 10:00-11:00 booking suppresses 10:00 and 10:30 but
	// leaves 11:00 bookable.
	occupied := []TimeRange{{Start: 600, End: 660}}
	slots := BuildSlots(600, 1200, 60, occupied)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
	assert.Len(t, slots, 17)
}

func TestBuildSlotsMonotonicShrinkage(t *testing.T) {
	// booking any returned slot must remove it from the next run.
	duration := 60
	occupied := []TimeRange{}
	for {
		slots := BuildSlots(600, 1200, duration, occupied)
		if len(slots) == 0 {
			break
		}
		start, err := ParseClock(slots[0])
		require.NoError(t, err)
		occupied = append(occupied, TimeRange{Start: start, End: start + duration})

		next := BuildSlots(600, 1200, duration, occupied)
		assert.NotContains(t, next, slots[0])
		assert.Less(t, len(next), len(slots))
	}
}

func TestBuildSlotsDurationLongerThanWindow(t *testing.T) {
	slots := BuildSlots(600, 660, 90, nil)
	assert.Empty(t, slots)
}

func TestBuildSlotsOffGridDuration(t *testing.T) {
	// a 70 minute service still starts on the :00/:30 grid only.
	slots := BuildSlots(600, 1200, 70, nil)
	for _, slot := range slots {
		start, err := ParseClock(slot)
		require.NoError(t, err)
		assert.Zero(t, (start-600)%SlotStepMinutes)
	}
	// last candidate must satisfy start+70 <= close
	last, err := ParseClock(slots[len(slots)-1])
	require.NoError(t, err)
	assert.LessOrEqual(t, last+70, 1200)
}

func TestDayKey(t *testing.T) {
	// 2025-12-22 is a Monday
	monday := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "mon", DayKey(monday))
	assert.Equal(t, "tue", DayKey(monday.AddDate(0, 0, 1)))
	assert.Equal(t, "sun", DayKey(monday.AddDate(0, 0, 6)))
}

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "25 hours ahead", start: now.Add(25 * time.Hour), want: true},
		{name: "exactly 24 hours ahead", start: now.Add(24 * time.Hour), want: true},
		{name: "23 hours ahead", start: now.Add(23 * time.Hour), want: false},
		{name: "in the past", start: now.Add(-time.Hour), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCancel(tt.start, now))
		})
	}
}
