package get_available_slots

import (
	"context"
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]domain.WorkingPattern, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	// ListForDay получает блокировки, действующие в конкретный локальный день
	ListForDay(ctx context.Context, staffID int64, date time.Time, weekday time.Weekday) ([]domain.Block, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (domain.Staff, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, salonID int64) (domain.Salon, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetActiveService(ctx context.Context, salonID, serviceID int64) (*catalogservice.Service, error)
}

// SlotConfigService интерфейс политики вывода шага сетки
type SlotConfigService interface {
	DeriveGranularity(ctx context.Context, staff domain.Staff) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
