package create_booking

import (
	"fmt"
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/timezone"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет дату в локальном календаре салона
func validateDate(norm *timezone.Normalizer, date time.Time, now time.Time, advanceBookingDays int) error {
	if norm.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := norm.LocalDate(now).AddDate(0, 0, advanceBookingDays)
	y, m, d := date.Date()
	requested := time.Date(y, m, d, 0, 0, 0, 0, norm.Location())
	if requested.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingNotice проверяет порог "сейчас + минимальное уведомление"
// в локальном времени салона
func validateBookingNotice(
	norm *timezone.Normalizer,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	if !norm.IsSameLocalDay(date, now) {
		return nil
	}

	cutoff := now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if !norm.IsSameLocalDay(date, cutoff) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: failed to parse start time: %v", ErrInternal, err)
	}
	if startMinutes < norm.MinutesOfDay(cutoff) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// validateInsideWorkingHours проверяет, что запрошенный интервал целиком
// лежит в рабочем времени мастера (работа минус обед минус блокировки)
func validateInsideWorkingHours(
	patterns []domain.WorkingPattern,
	blocks []domain.Block,
	date time.Time,
	weekday time.Weekday,
	requested domain.Interval,
) error {
	work, err := domain.DayWorkIntervals(patterns, weekday)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve working hours: %v", ErrInternal, err)
	}

	blocked, err := domain.DayBlockIntervals(blocks, date, weekday)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve blocks: %v", ErrInternal, err)
	}

	free := domain.SubtractAll(work, blocked)
	for _, iv := range free {
		if iv.Contains(requested) {
			return nil
		}
	}

	return ErrOutsideWorkingHours
}

// findOverlappingBooking ищет активную запись, пересекающуюся с запрошенным
// интервалом инстантов. Касание границ пересечением не считается
func findOverlappingBooking(bookings []*domain.Booking, start, end time.Time) *domain.Booking {
	for _, b := range bookings {
		if !b.IsBlocking() {
			continue
		}
		if b.OverlapsInstant(start, end) {
			return b
		}
	}
	return nil
}
