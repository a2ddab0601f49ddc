package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/akholodov/salon-booking-service/internal/domain"
	salonRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	catalogClient "github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	"github.com/akholodov/salon-booking-service/pkg/timezone"
)

// UseCase use case для расчета доступных слотов мастера на дату
type UseCase struct {
	scheduleRepo  ScheduleRepository
	blockRepo     BlockRepository
	bookingRepo   BookingRepository
	staffRepo     StaffRepository
	salonRepo     SalonRepository
	catalogClient CatalogServiceClient
	configService SlotConfigService
	timeProvider  TimeProvider
	logger        Logger

	minNoticeMinutes   int
	advanceBookingDays int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	salonRepo SalonRepository,
	catalogClient CatalogServiceClient,
	configService SlotConfigService,
	minNoticeMinutes int,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:       scheduleRepo,
		blockRepo:          blockRepo,
		bookingRepo:        bookingRepo,
		staffRepo:          staffRepo,
		salonRepo:          salonRepo,
		catalogClient:      catalogClient,
		configService:      configService,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		minNoticeMinutes:   minNoticeMinutes,
		advanceBookingDays: advanceBookingDays,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, salon=%d, staff=%d, service=%d, date=%s",
		req.UserID, req.SalonID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем мастера
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrTemporarilyUnavailable, err)
	}
	if !staff.Active || staff.SalonID != req.SalonID {
		uc.logger.Warn("GetAvailableSlots: staff id=%d inactive or not in salon=%d", req.StaffID, req.SalonID)
		return nil, ErrStaffInactive
	}

	// 4. Получаем салон и строим нормализатор его зоны
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrTemporarilyUnavailable, err)
	}

	norm, err := timezone.New(salon.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: bad timezone %q for salon id=%d: %v", salon.Timezone, req.SalonID, err)
		return nil, fmt.Errorf("%w: bad salon timezone: %v", ErrInternal, err)
	}

	// 5. Получаем услугу из каталога (длительность определяет упаковку слотов)
	service, err := uc.catalogClient.GetActiveService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: catalog error: %v", ErrTemporarilyUnavailable, err)
	}
	if service.DurationMinutes < 1 {
		uc.logger.Warn("GetAvailableSlots: service id=%d has non-positive duration", req.ServiceID)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 6. Валидация даты в локальном календаре салона
	if err := validateDate(norm, req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем шаблоны расписания
	// Пустой список — это выходной, а не сбой: при сбое хранилища
	// отвечаем ошибкой, никогда пустым списком
	patterns, err := uc.scheduleRepo.GetByStaff(ctx, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrTemporarilyUnavailable, err)
	}

	weekday := norm.Weekday(req.Date)

	// 8. Получаем блокировки на этот день
	blocks, err := uc.blockRepo.ListForDay(ctx, req.StaffID, req.Date, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrTemporarilyUnavailable, err)
	}

	// 9. Получаем занимающие время записи в границах локальных суток
	dayStart, dayEnd := norm.DayBounds(req.Date)
	bookings, err := uc.bookingRepo.GetByStaffWithFilter(ctx, domain.StaffBookingsFilter{
		StaffID:     req.StaffID,
		FromInstant: &dayStart,
		ToInstant:   &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrTemporarilyUnavailable, err)
	}

	// 10. Свободные интервалы: работа − обед − блокировки − записи
	free, err := buildFreeIntervals(norm, patterns, blocks, bookings, req.Date, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to build intervals: %v", ErrInternal, err)
	}

	// 11. Шаг сетки по политике вывода
	granularity := uc.configService.DeriveGranularity(ctx, staff)

	// 12. Перечисляем старты с учетом порога "сейчас + уведомление"
	earliest := earliestStartMinutes(norm, req.Date, now, uc.minNoticeMinutes)
	starts := domain.EnumerateSlotStarts(free, granularity, service.DurationMinutes, earliest)

	slots, err := toSlots(starts, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for staff=%d, service=%d, date=%s",
		len(slots), req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		SalonID:   req.SalonID,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Timezone:  salon.Timezone,
		Slots:     slots,
	}, nil
}
