package list_blocks

import (
	"context"

	"github.com/akholodov/salon-booking-service/internal/service/schedule/models"
)

// ScheduleService определяет контракт сервиса расписаний
type ScheduleService interface {
	ListBlocks(ctx context.Context, staffID int64) (*models.BlockListResponse, error)
}

// Logger определяет контракт для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
