package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidPattern возвращается при некорректном шаблоне расписания
	ErrInvalidPattern = errors.New("invalid working pattern")
)

// WorkingPattern is one recurring weekly availability range of a staff
// member: the weekdays it applies on, the working hours and an optional
// lunch break.
//
// A lunch pair that does not fall strictly inside the working range is kept
// in storage but ignored at slot-generation time (the stored data contains
// such rows, and generation must stay total).
type WorkingPattern struct {
	ID         int64
	StaffID    int64
	Weekdays   WeekdaySet
	StartTime  types.TimeString
	EndTime    types.TimeString
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesOn reports whether the pattern covers the weekday
func (p *WorkingPattern) AppliesOn(d time.Weekday) bool {
	return p.Weekdays.Contains(d)
}

// HasLunch reports whether both lunch bounds are set
func (p *WorkingPattern) HasLunch() bool {
	return p.LunchStart != nil && p.LunchEnd != nil &&
		!p.LunchStart.IsZero() && !p.LunchEnd.IsZero()
}

// WorkInterval returns the working range as minutes since midnight
func (p *WorkingPattern) WorkInterval() (Interval, error) {
	start, err := p.StartTime.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidPattern, err)
	}
	end, err := p.EndTime.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidPattern, err)
	}
	return Interval{Start: start, End: end}, nil
}

// LunchInterval returns the lunch range and whether it should be applied.
// It returns ok=false when no lunch is configured, the pair is malformed
// or the lunch does not fall strictly inside the working range. Strictly
// means both edges: a lunch starting at opening, ending at closing or
// covering the whole range is ignored rather than applied.
func (p *WorkingPattern) LunchInterval() (Interval, bool) {
	if !p.HasLunch() {
		return Interval{}, false
	}

	start, err := p.LunchStart.Minutes()
	if err != nil {
		return Interval{}, false
	}
	end, err := p.LunchEnd.Minutes()
	if err != nil {
		return Interval{}, false
	}

	lunch := Interval{Start: start, End: end}
	if !lunch.IsValid() {
		return Interval{}, false
	}

	work, err := p.WorkInterval()
	if err != nil {
		return Interval{}, false
	}
	if work.Start >= lunch.Start || lunch.End >= work.End {
		return Interval{}, false
	}

	return lunch, true
}

// Validate проверяет инварианты шаблона: корректный формат времени,
// start < end, непустой набор дней недели
// Валидность обеденного окна НЕ проверяется: некорректный обед
// игнорируется при генерации, а не отклоняется при записи
func (p *WorkingPattern) Validate() error {
	if p.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidPattern)
	}
	if p.Weekdays.IsEmpty() {
		return fmt.Errorf("%w: weekday set is empty", ErrInvalidPattern)
	}
	if err := p.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if err := p.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if !p.StartTime.IsBefore(p.EndTime) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidPattern, p.StartTime, p.EndTime)
	}
	if p.HasLunch() {
		if err := p.LunchStart.Validate(); err != nil {
			return fmt.Errorf("%w: lunch start: %v", ErrInvalidPattern, err)
		}
		if err := p.LunchEnd.Validate(); err != nil {
			return fmt.Errorf("%w: lunch end: %v", ErrInvalidPattern, err)
		}
	}
	return nil
}
