package domain

import "github.com/akholodov/salon-booking-service/pkg/types"

// Slot is a derived, advisory candidate start time at which a booking of a
// given service could begin. Slots are never persisted and never trusted as
// a reservation: the coordinator re-validates the interval at commit time.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
