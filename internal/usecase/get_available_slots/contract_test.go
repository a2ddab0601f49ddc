package get_available_slots

import (
	blockStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	bookingStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	salonStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	scheduleStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/schedule"
	staffStorage "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	configService "github.com/akholodov/salon-booking-service/internal/service/config"
)

// Контракты юзкейса должны выполняться боевыми реализациями из main
var (
	_ ScheduleRepository   = (*scheduleStorage.Repository)(nil)
	_ BlockRepository      = (*blockStorage.Repository)(nil)
	_ BookingRepository    = (*bookingStorage.Repository)(nil)
	_ StaffRepository      = (*staffStorage.Repository)(nil)
	_ SalonRepository      = (*salonStorage.Repository)(nil)
	_ CatalogServiceClient = (*catalogservice.Client)(nil)
	_ SlotConfigService    = (*configService.Service)(nil)
)
