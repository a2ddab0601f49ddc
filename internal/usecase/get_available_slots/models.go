package get_available_slots

import (
	"time"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID    int64     // ID пользователя (для логирования, не влияет на результат)
	SalonID   int64     // ID салона
	StaffID   int64     // ID мастера
	ServiceID int64     // ID услуги
	Date      time.Time // Локальная дата салона (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	SalonID   int64     // ID салона
	StaffID   int64     // ID мастера
	ServiceID int64     // ID услуги
	Timezone  string    // IANA зона салона, в которой выражены слоты
	Slots     []Slot    // Список доступных слотов
}

// Slot модель временного слота
// Слот — это рекомендация момента начала, а не бронь: занятость
// проверяется заново в момент резервирования
type Slot struct {
	StartTime       types.TimeString // Локальное время начала ("10:00")
	DurationMinutes int              // Длительность услуги в минутах
}
