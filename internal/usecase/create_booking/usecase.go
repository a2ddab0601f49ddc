package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akholodov/salon-booking-service/internal/domain"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	salonRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	catalogClient "github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	"github.com/akholodov/salon-booking-service/pkg/timezone"
)

// UseCase use case создания записи.
//
// Резервирование выполняется в сериализуемой транзакции с блокировкой
// строки мастера: проверка занятости и вставка происходят атомарно,
// поэтому две конкурирующие попытки занять одно время никогда не
// проходят обе. Exclusion constraint в БД остаётся последней линией
// обороны на случай записи в обход этого пути.
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	blockRepo     BlockRepository
	staffRepo     StaffRepository
	salonRepo     SalonRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger

	minNoticeMinutes   int
	advanceBookingDays int
	reserveTimeout     time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	staffRepo StaffRepository,
	salonRepo SalonRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	minNoticeMinutes int,
	advanceBookingDays int,
	reserveTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		scheduleRepo:       scheduleRepo,
		blockRepo:          blockRepo,
		staffRepo:          staffRepo,
		salonRepo:          salonRepo,
		catalogClient:      catalogClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
		minNoticeMinutes:   minNoticeMinutes,
		advanceBookingDays: advanceBookingDays,
		reserveTimeout:     reserveTimeout,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, salon=%d, staff=%d, service=%d, date=%s, time=%s",
		req.UserID, req.SalonID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем салон и строим нормализатор его зоны
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	norm, err := timezone.New(salon.Timezone)
	if err != nil {
		uc.logger.Error("CreateBooking: bad timezone %q for salon id=%d: %v", salon.Timezone, req.SalonID, err)
		return nil, fmt.Errorf("%w: bad salon timezone: %v", ErrInternal, err)
	}

	// 4. Получаем услугу из каталога (внешний вызов до транзакции)
	service, err := uc.catalogClient.GetActiveService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.DurationMinutes < 1 {
		uc.logger.Warn("CreateBooking: service id=%d has non-positive duration", req.ServiceID)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 5. Валидация даты и порога уведомления в локальном календаре салона
	if err := validateDate(norm, req.Date, now, uc.advanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateBookingNotice(norm, req.Date, req.StartTime, now, uc.minNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 6. Собираем запрошенный интервал в обоих представлениях
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse start time: %v", ErrInternal, err)
	}
	requested := domain.Interval{Start: startMinutes, End: startMinutes + service.DurationMinutes}

	startInstant, err := norm.ToInstant(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build start instant: %v", ErrInternal, err)
	}
	endInstant := startInstant.Add(time.Duration(service.DurationMinutes) * time.Minute)

	status := domain.StatusPending
	if req.Confirm {
		status = domain.StatusConfirmed
	}

	weekday := norm.Weekday(req.Date)

	// Таймаут на всё резервирование: зависший запрос не должен держать
	// блокировку строки мастера дольше необходимого
	txCtx, cancel := context.WithTimeout(ctx, uc.reserveTimeout)
	defer cancel()

	var result *domain.Booking

	// 7. Резервирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(txCtx, func(txCtx context.Context) error {
		// 7.1. Блокируем строку мастера и проверяем его состояние
		staff, err := uc.staffRepo.GetByIDForUpdate(txCtx, req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
				return ErrStaffNotFound
			}
			uc.logger.Error("CreateBooking: failed to lock staff id=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to lock staff: %v", ErrInternal, err)
		}
		if !staff.Active || staff.SalonID != req.SalonID {
			uc.logger.Warn("CreateBooking: staff id=%d inactive or not in salon=%d", req.StaffID, req.SalonID)
			return ErrStaffInactive
		}

		// 7.2. Проверяем, что интервал лежит в рабочем времени
		patterns, err := uc.scheduleRepo.GetByStaff(txCtx, req.StaffID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule for staff=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		blocks, err := uc.blockRepo.ListForDay(txCtx, req.StaffID, req.Date, weekday)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks for staff=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}
		if err := validateInsideWorkingHours(patterns, blocks, req.Date, weekday, requested); err != nil {
			uc.logger.Warn("CreateBooking: %s %s not inside working hours for staff=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.StaffID)
			return err
		}

		// 7.3. Читаем активные записи дня с блокировкой (FOR UPDATE)
		dayStart, dayEnd := norm.DayBounds(req.Date)
		bookings, err := uc.bookingRepo.GetByStaffWithFilter(txCtx, domain.StaffBookingsFilter{
			StaffID:     req.StaffID,
			FromInstant: &dayStart,
			ToInstant:   &dayEnd,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for staff=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.4. Проверяем пересечение с занимающими время записями
		if conflict := findOverlappingBooking(bookings, startInstant, endInstant); conflict != nil {
			uc.logger.Warn("CreateBooking: slot taken by booking id=%d for staff=%d", conflict.ID, req.StaffID)
			return ErrSlotNotAvailable
		}

		// 7.5. Создаем запись с денормализацией данных услуги
		booking := &domain.Booking{
			Reference:       uuid.New(),
			SalonID:         req.SalonID,
			StaffID:         req.StaffID,
			ServiceID:       req.ServiceID,
			ClientID:        req.UserID,
			StartInstant:    startInstant,
			DurationMinutes: service.DurationMinutes,
			Status:          status,
			ServiceName:     service.Name,
			ServicePrice:    getServicePrice(service),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return uc.mapCreateError(err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации может прилететь и на COMMIT
		if errors.Is(err, bookingRepo.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict for staff=%d", req.StaffID)
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, status=%s",
		result.ID, result.Reference, result.Status)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference.String(),
		ClientID:        result.ClientID,
		SalonID:         result.SalonID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		StartInstant:    result.StartInstant,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapCreateError транслирует ошибки хранилища в ошибки usecase
func (uc *UseCase) mapCreateError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrOverlap):
		// Exclusion constraint сработал раньше прикладной проверки
		uc.logger.Warn("CreateBooking: overlap rejected by database: %v", err)
		return ErrSlotNotAvailable
	case errors.Is(err, bookingRepo.ErrSerialization):
		uc.logger.Warn("CreateBooking: serialization conflict: %v", err)
		return ErrConflict
	default:
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
