package domain

import "time"

// Availability math shared by the slot generator and the reservation
// coordinator. Everything here is pure: inputs are already loaded and
// already normalized to the salon's local wall clock.

// DayWorkIntervals resolves the working pattern rows for one weekday into
// disjoint available intervals: each applicable range minus its lunch break
// (a lunch not strictly inside the range is ignored, see WorkingPattern).
//
// An empty result for an empty pattern set is a valid "day off" answer, not
// an error: lookup failures are signalled by the repositories, never here.
func DayWorkIntervals(patterns []WorkingPattern, weekday time.Weekday) ([]Interval, error) {
	intervals := make([]Interval, 0, len(patterns))

	for _, p := range patterns {
		if !p.AppliesOn(weekday) {
			continue
		}

		work, err := p.WorkInterval()
		if err != nil {
			return nil, err
		}
		if !work.IsValid() {
			continue
		}

		if lunch, ok := p.LunchInterval(); ok {
			intervals = append(intervals, work.Subtract(lunch)...)
		} else {
			intervals = append(intervals, work)
		}
	}

	return SubtractAll(intervals, nil), nil
}

// DayBlockIntervals resolves all blocks that apply on the given local date
// (dated blocks by exact date, recurring blocks by weekday) into intervals
func DayBlockIntervals(blocks []Block, date time.Time, weekday time.Weekday) ([]Interval, error) {
	intervals := make([]Interval, 0, len(blocks))

	for _, b := range blocks {
		if !b.AppliesOn(date, weekday) {
			continue
		}
		iv, err := b.Interval()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	return intervals, nil
}

// EnumerateSlotStarts walks the free intervals in chronological order and
// returns candidate start minutes stepped by granularity from each
// interval's start. A candidate survives only if the whole service duration
// fits inside the interval and the start is not before earliestStart
// (the "now + notice" cutoff for today, 0 for other days).
//
// Slots step by granularity even when the service is longer than the step:
// the grid stays uniform across services of different lengths.
func EnumerateSlotStarts(free []Interval, granularityMinutes, durationMinutes, earliestStart int) []int {
	if granularityMinutes < 1 || durationMinutes < 1 {
		return nil
	}

	starts := make([]int, 0)
	seen := make(map[int]struct{})

	for _, iv := range free {
		for candidate := iv.Start; candidate+durationMinutes <= iv.End; candidate += granularityMinutes {
			if candidate < earliestStart {
				continue
			}
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			starts = append(starts, candidate)
		}
	}

	return starts
}
