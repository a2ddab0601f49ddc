package create_booking

import (
	"time"

	"github.com/akholodov/salon-booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID клиента
	SalonID   int64            // ID салона
	StaffID   int64            // ID мастера
	ServiceID int64            // ID услуги
	Date      time.Time        // Локальная дата салона (без времени)
	StartTime types.TimeString // Локальное время начала ("10:00")
	Notes     *string          // Дополнительные заметки (опционально)

	// Confirm = true создает запись сразу в статусе confirmed
	// (салоны без этапа подтверждения); иначе запись ждет подтверждения
	// в статусе pending. Оба статуса занимают время мастера
	Confirm bool
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	Reference       string           // Внешний UUID записи
	ClientID        int64            // ID клиента
	SalonID         int64            // ID салона
	StaffID         int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Локальная дата записи
	StartTime       types.TimeString // Локальное время начала
	StartInstant    time.Time        // Абсолютный UTC-инстант начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
