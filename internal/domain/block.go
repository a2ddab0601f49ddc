package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidBlock возвращается при некорректной блокировке времени
	ErrInvalidBlock = errors.New("invalid block")
)

// BlockKind вид блокировки: разовая или повторяющаяся
type BlockKind string

const (
	// BlockDated разовая блокировка на конкретную дату
	BlockDated BlockKind = "dated"
	// BlockRecurring еженедельная блокировка на день недели, без даты
	// окончания: действует, пока не удалена
	BlockRecurring BlockKind = "recurring"
)

// Block is an exclusion window removing time from a staff member's
// availability: a vacation day, a personal appointment, a recurring
// weekly unavailability.
//
// The tagged-variant shape (dated XOR recurring) is resolved to a concrete
// interval only for the specific date being queried; nothing else in the
// system ever materializes recurring blocks.
type Block struct {
	ID      int64
	StaffID int64
	Kind    BlockKind

	// Date задана только для BlockDated (календарная дата, время обнулено)
	Date *time.Time
	// Weekday задан только для BlockRecurring (0 = воскресенье)
	Weekday *time.Weekday

	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesOn reports whether the block removes time from the given local
// calendar date (weekday is the date's weekday in the salon's zone)
func (b *Block) AppliesOn(date time.Time, weekday time.Weekday) bool {
	switch b.Kind {
	case BlockDated:
		if b.Date == nil {
			return false
		}
		y1, m1, d1 := b.Date.Date()
		y2, m2, d2 := date.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case BlockRecurring:
		return b.Weekday != nil && *b.Weekday == weekday
	default:
		return false
	}
}

// Interval returns the blocked range as minutes since midnight
func (b *Block) Interval() (Interval, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidBlock, err)
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidBlock, err)
	}
	return Interval{Start: start, End: end}, nil
}

// Validate проверяет инварианты блокировки
func (b *Block) Validate() error {
	if b.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidBlock)
	}

	switch b.Kind {
	case BlockDated:
		if b.Date == nil {
			return fmt.Errorf("%w: dated block requires a date", ErrInvalidBlock)
		}
		if b.Weekday != nil {
			return fmt.Errorf("%w: dated block must not carry a weekday", ErrInvalidBlock)
		}
	case BlockRecurring:
		if b.Weekday == nil {
			return fmt.Errorf("%w: recurring block requires a weekday", ErrInvalidBlock)
		}
		if *b.Weekday < time.Sunday || *b.Weekday > time.Saturday {
			return fmt.Errorf("%w: weekday out of range", ErrInvalidBlock)
		}
		if b.Date != nil {
			return fmt.Errorf("%w: recurring block must not carry a date", ErrInvalidBlock)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidBlock, b.Kind)
	}

	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidBlock, b.StartTime, b.EndTime)
	}
	if len(b.Reason) > MaxReasonLength {
		return fmt.Errorf("%w: reason too long", ErrInvalidBlock)
	}

	return nil
}
