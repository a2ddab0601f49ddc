package config

import (
	"context"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (domain.Staff, error)
	UpdateSlotGranularity(ctx context.Context, staffID int64, granularityMinutes *int) error
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	ListStaffServices(ctx context.Context, staffID int64) ([]catalogservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
