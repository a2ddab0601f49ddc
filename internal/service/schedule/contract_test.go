package schedule

import (
	blockStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	scheduleStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/schedule"
	staffStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/pkg/simpletxmanager"
	"github.com/akholodov/salon-booking-service/pkg/txmanager"
)

// Контракты сервиса должны выполняться боевыми реализациями из main
var (
	_ ScheduleRepository = (*scheduleStorage.Repository)(nil)
	_ BlockRepository    = (*blockStorage.Repository)(nil)
	_ StaffRepository    = (*staffStorage.Repository)(nil)
	_ TransactionManager = (*txmanager.TransactionManager)(nil)
	_ TransactionManager = (*simpletxmanager.TransactionManager)(nil)
)
