package update_staff_schedule

import (
	"context"

	"github.com/akholodov/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
