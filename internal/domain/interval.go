package domain

import "sort"

// Interval is a half-open [Start, End) range of minutes since local midnight.
// All availability math operates on these values; conversion from instants
// and wall-clock strings happens at the edges.
type Interval struct {
	Start int
	End   int
}

// IsValid reports whether the interval is non-empty
func (i Interval) IsValid() bool {
	return i.Start < i.End
}

// Overlaps reports whether two half-open intervals actually intersect.
// Touching boundaries ([a,b) and [b,c)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether other lies fully inside i
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// Subtract removes other from i, returning the 0, 1 or 2 remaining parts
func (i Interval) Subtract(other Interval) []Interval {
	if !i.Overlaps(other) {
		return []Interval{i}
	}

	var parts []Interval
	if i.Start < other.Start {
		parts = append(parts, Interval{Start: i.Start, End: other.Start})
	}
	if other.End < i.End {
		parts = append(parts, Interval{Start: other.End, End: i.End})
	}
	return parts
}

// SubtractAll removes every cut interval from every base interval and
// returns the remaining parts sorted ascending. Empty and invalid cuts
// are ignored.
func SubtractAll(base []Interval, cuts []Interval) []Interval {
	remaining := make([]Interval, 0, len(base))
	for _, b := range base {
		if b.IsValid() {
			remaining = append(remaining, b)
		}
	}

	for _, cut := range cuts {
		if !cut.IsValid() {
			continue
		}
		next := make([]Interval, 0, len(remaining))
		for _, r := range remaining {
			next = append(next, r.Subtract(cut)...)
		}
		remaining = next
	}

	sort.Slice(remaining, func(a, b int) bool {
		return remaining[a].Start < remaining[b].Start
	})

	return remaining
}
