package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultMinNoticeMinutes       = 60 // 1 hour
	DefaultAdvanceBookingDays     = 0  // 0 = unlimited
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480   // 8 hours
	MinAdvanceBookingDays     = 0
	MaxAdvanceBookingDays     = 365   // 1 year
	MaxNoticeMinutes          = 10080 // 1 week
	MaxNotesLength            = 500
	MaxReasonLength           = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы бронирований, занимающих время мастера
// Используется генератором слотов и координатором резервирования:
// только pending и confirmed исключают интервал из доступности
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов неактивных бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}
