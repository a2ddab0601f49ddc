package get_available_slots

import (
	"fmt"
	"time"

	"github.com/akholodov/salon-booking-service/pkg/timezone"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	return nil
}

// validateDate проверяет дату в локальном календаре салона:
// не в прошлом и не дальше горизонта бронирования
func validateDate(norm *timezone.Normalizer, date time.Time, now time.Time, advanceBookingDays int) error {
	if norm.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	// advanceBookingDays = 0 — горизонт не ограничен
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
