package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

func pattern(weekdays WeekdaySet, start, end string, lunch ...string) WorkingPattern {
	p := WorkingPattern{
		StaffID:   1,
		Weekdays:  weekdays,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
	if len(lunch) == 2 {
		ls := types.TimeString(lunch[0])
		le := types.TimeString(lunch[1])
		p.LunchStart = &ls
		p.LunchEnd = &le
	}
	return p
}

func TestDayWorkIntervals(t *testing.T) {
	workweek := NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

	t.Run("lunch is carved out of the working range", func(t *testing.T) {
		patterns := []WorkingPattern{
			pattern(workweek, "09:00", "18:00", "12:00", "13:00"),
		}

		got, err := DayWorkIntervals(patterns, time.Monday)
		require.NoError(t, err)

		assert.Equal(t, []Interval{
			{Start: 540, End: 720},  // 09:00-12:00
			{Start: 780, End: 1080}, // 13:00-18:00
		}, got)
	})

	t.Run("day off yields empty result", func(t *testing.T) {
		patterns := []WorkingPattern{
			pattern(workweek, "09:00", "18:00"),
		}

		got, err := DayWorkIntervals(patterns, time.Sunday)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no patterns means no availability", func(t *testing.T) {
		got, err := DayWorkIntervals(nil, time.Monday)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("lunch outside working hours is ignored", func(t *testing.T) {
		patterns := []WorkingPattern{
			pattern(workweek, "09:00", "13:00", "14:00", "15:00"),
		}

		got, err := DayWorkIntervals(patterns, time.Friday)
		require.NoError(t, err)
		assert.Equal(t, []Interval{{Start: 540, End: 780}}, got)
	})

	t.Run("lunch touching or covering the range edges is ignored", func(t *testing.T) {
		// Обед применяется только строго внутри рабочего окна:
		// касание границы или полное совпадение не выключают день
		cases := []struct {
			name                 string
			lunchStart, lunchEnd string
		}{
			{"starts at opening", "09:00", "10:00"},
			{"ends at closing", "17:00", "18:00"},
			{"covers the whole range", "09:00", "18:00"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				patterns := []WorkingPattern{
					pattern(workweek, "09:00", "18:00", tc.lunchStart, tc.lunchEnd),
				}

				got, err := DayWorkIntervals(patterns, time.Monday)
				require.NoError(t, err)
				assert.Equal(t, []Interval{{Start: 540, End: 1080}}, got)
			})
		}
	})

	t.Run("multiple patterns for one day merge sorted", func(t *testing.T) {
		patterns := []WorkingPattern{
			pattern(NewWeekdaySet(time.Saturday), "14:00", "18:00"),
			pattern(NewWeekdaySet(time.Saturday), "09:00", "12:00"),
		}

		got, err := DayWorkIntervals(patterns, time.Saturday)
		require.NoError(t, err)
		assert.Equal(t, []Interval{
			{Start: 540, End: 720},
			{Start: 840, End: 1080},
		}, got)
	})
}

func TestDayBlockIntervals(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // Monday
	monday := time.Monday

	datedSame := Block{
		StaffID:   1,
		Kind:      BlockDated,
		Date:      &date,
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	otherDate := date.AddDate(0, 0, 1)
	datedOther := Block{
		StaffID:   1,
		Kind:      BlockDated,
		Date:      &otherDate,
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	recurringMonday := Block{
		StaffID:   1,
		Kind:      BlockRecurring,
		Weekday:   &monday,
		StartTime: "16:00",
		EndTime:   "18:00",
	}

	got, err := DayBlockIntervals([]Block{datedSame, datedOther, recurringMonday}, date, time.Monday)
	require.NoError(t, err)

	assert.Equal(t, []Interval{
		{Start: 600, End: 660},   // dated on the queried date
		{Start: 960, End: 1080},  // recurring Monday
	}, got)

	got, err = DayBlockIntervals([]Block{recurringMonday}, date.AddDate(0, 0, 1), time.Tuesday)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnumerateSlotStarts(t *testing.T) {
	tests := []struct {
		name          string
		free          []Interval
		granularity   int
		duration      int
		earliestStart int
		want          []int
	}{
		{
			name:        "uniform grid within one interval",
			free:        []Interval{{Start: 540, End: 660}}, // 09:00-11:00
			granularity: 30,
			duration:    30,
			want:        []int{540, 570, 600, 630},
		},
		{
			name:        "long service packs fewer slots",
			free:        []Interval{{Start: 540, End: 600}}, // 09:00-10:00
			granularity: 15,
			duration:    45,
			want:        []int{540},
		},
		{
			name:        "service longer than interval yields nothing",
			free:        []Interval{{Start: 540, End: 570}},
			granularity: 15,
			duration:    60,
			want:        []int{},
		},
		{
			name:          "earliest start cuts leading candidates",
			free:          []Interval{{Start: 540, End: 720}},
			granularity:   60,
			duration:      60,
			earliestStart: 601,
			want:          []int{660},
		},
		{
			name:        "grid restarts at each free interval",
			free:        []Interval{{Start: 540, End: 630}, {Start: 650, End: 740}},
			granularity: 30,
			duration:    30,
			want:        []int{540, 570, 600, 650, 680, 710},
		},
		{
			name:        "zero granularity yields nothing",
			free:        []Interval{{Start: 540, End: 720}},
			granularity: 0,
			duration:    30,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumerateSlotStarts(tt.free, tt.granularity, tt.duration, tt.earliestStart)
			assert.Equal(t, tt.want, got)
		})
	}
}
