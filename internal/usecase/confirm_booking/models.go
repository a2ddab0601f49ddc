package confirm_booking

import "time"

// Request модель запроса на подтверждение записи
type Request struct {
	BookingID int64 // ID записи
	UserID    int64 // ID инициатора (для логирования)
}

// Response модель ответа с подтвержденной записью
type Response struct {
	ID           int64     // ID записи
	Reference    string    // Внешний UUID записи
	Status       string    // Новый статус (confirmed)
	StartInstant time.Time // Абсолютный UTC-инстант начала
	UpdatedAt    time.Time // Время обновления
}
