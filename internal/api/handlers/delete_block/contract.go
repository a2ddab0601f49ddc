package delete_block

import "context"

// ScheduleService определяет контракт сервиса расписаний
type ScheduleService interface {
	DeleteBlock(ctx context.Context, staffID, blockID int64) error
}

// Logger определяет контракт для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
