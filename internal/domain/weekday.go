package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidWeekdaySet возвращается при некорректном наборе дней недели
	ErrInvalidWeekdaySet = errors.New("invalid weekday set")
)

// WeekdaySet is a set of weekdays, 0 = Sunday (matching time.Weekday).
//
// The persisted representation is the comma-joined 0-6 integer list
// ("1,2,3,4,5") that the stored schedule data already uses; the set type
// exists so the rest of the code never touches that encoding.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// ParseWeekdaySet parses the comma-joined "0,1,2" representation
// (0 = Sunday). Whitespace around elements is tolerated.
func ParseWeekdaySet(raw string) (WeekdaySet, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	var s WeekdaySet
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWeekdaySet, raw)
		}
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: day %d out of range", ErrInvalidWeekdaySet, n)
		}
		s |= 1 << uint(n)
	}
	return s, nil
}

// Contains reports whether the set includes the weekday
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// IsEmpty reports whether the set contains no days
func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// Days returns the contained weekdays in ascending order (Sunday first)
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String returns the comma-joined persisted form, ascending ("0,1,5")
func (s WeekdaySet) String() string {
	days := s.Days()
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// Scan реализует sql.Scanner
func (s *WeekdaySet) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = 0
		return nil
	case string:
		parsed, err := ParseWeekdaySet(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		parsed, err := ParseWeekdaySet(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidWeekdaySet, value)
	}
}

// Value реализует driver.Valuer
func (s WeekdaySet) Value() (driver.Value, error) {
	return s.String(), nil
}
