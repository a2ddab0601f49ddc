package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon  BookingStatus = "cancelled_by_salon"
	StatusNoShow            BookingStatus = "no_show"
)

// Booking represents a confirmed or pending appointment of a client
// with a staff member.
//
// StartInstant is an absolute UTC instant; all wall-clock views of it go
// through the timezone normalizer of the owning salon. EndInstant is derived
// (start + service duration), never stored.
type Booking struct {
	ID              int64
	Reference       uuid.UUID // externally visible booking reference
	SalonID         int64
	StaffID         int64
	ServiceID       int64
	ClientID        int64
	StartInstant    time.Time // UTC
	DurationMinutes int
	Status          BookingStatus

	// Denormalized catalog data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndInstant returns the derived end of the booking (start + duration)
func (b *Booking) EndInstant() time.Time {
	return b.StartInstant.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsBlocking returns true if the booking occupies the staff member's time.
// Only pending and confirmed bookings block; cancelled and completed ones
// never prevent a new booking at the same slot.
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OverlapsInstant reports whether [start, end) overlaps this booking's
// interval. Touching boundaries do not overlap.
func (b *Booking) OverlapsInstant(start, end time.Time) bool {
	return b.StartInstant.Before(end) && start.Before(b.EndInstant())
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can transition to confirmed.
// A cancelled booking may be re-activated, but only after the overlap
// invariant is re-checked by the caller.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending || b.IsCancelled()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledBySalon
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByClient, StatusCancelledBySalon, StatusNoShow:
		return true
	}
	return false
}

// StaffBookingsFilter фильтр для получения бронирований мастера
type StaffBookingsFilter struct {
	StaffID         int64          // Обязательный параметр
	FromInstant     *time.Time     // Начало периода (UTC, опционально)
	ToInstant       *time.Time     // Конец периода (UTC, опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show
}
