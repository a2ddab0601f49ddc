package domain

import "time"

// Staff is a bookable staff member (master, barber) of a salon
type Staff struct {
	ID          int64
	SalonID     int64
	DisplayName string
	Active      bool

	// SlotGranularityMinutes явно заданный шаг сетки слотов
	// nil = шаг выводится политикой (см. config.DeriveGranularity)
	SlotGranularityMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Salon is the tenant: every staff member, schedule and booking belongs to
// exactly one salon. There is no implicit fallback salon anywhere; callers
// always pass an explicit salon id.
type Salon struct {
	ID   int64
	Name string

	// Timezone IANA зона салона ("Europe/Moscow", "America/Sao_Paulo")
	// Вся интервальная арифметика ведётся в этой зоне
	Timezone string
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
