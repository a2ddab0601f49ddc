package get_slot_config

import (
	"context"

	"github.com/akholodov/salon-booking-service/internal/service/config/models"
)

// SlotConfigService определяет контракт сервиса конфигурации слотов
type SlotConfigService interface {
	GetSlotConfig(ctx context.Context, staffID int64) (*models.SlotConfigResponse, error)
}

// Logger определяет контракт для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
