package schedule

import (
	"context"
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]domain.WorkingPattern, error)
	ReplaceForStaff(ctx context.Context, staffID int64, patterns []domain.WorkingPattern) ([]domain.WorkingPattern, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block domain.Block) (domain.Block, error)
	Delete(ctx context.Context, staffID, blockID int64) error
	ListByStaff(ctx context.Context, staffID int64) ([]domain.Block, error)
	ListForDay(ctx context.Context, staffID int64, date time.Time, weekday time.Weekday) ([]domain.Block, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (domain.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
