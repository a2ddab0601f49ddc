package create_booking

import (
	blockStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	bookingStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	salonStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	scheduleStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/schedule"
	staffStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	"github.com/akholodov/salon-booking-service/pkg/simpletxmanager"
	"github.com/akholodov/salon-booking-service/pkg/txmanager"
)

// Контракты юзкейса должны выполняться боевыми реализациями из main
var (
	_ BookingRepository    = (*bookingStorage.Repository)(nil)
	_ ScheduleRepository   = (*scheduleStorage.Repository)(nil)
	_ BlockRepository      = (*blockStorage.Repository)(nil)
	_ StaffRepository      = (*staffStorage.Repository)(nil)
	_ SalonRepository      = (*salonStorage.Repository)(nil)
	_ CatalogServiceClient = (*catalogservice.Client)(nil)
	_ TransactionManager   = (*txmanager.TransactionManager)(nil)
	_ TransactionManager   = (*simpletxmanager.TransactionManager)(nil)
)
