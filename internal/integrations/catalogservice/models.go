package catalogservice

// Service модель услуги из каталога (CatalogService)
type Service struct {
	ID              int64    `json:"id"`
	SalonID         int64    `json:"salon_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Active          bool     `json:"active"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
