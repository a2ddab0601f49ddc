package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/akholodov/salon-booking-service/internal/domain"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/pkg/timezone"
)

// UseCase use case подтверждения записи.
//
// Обычный переход pending → confirmed тривиален: время уже занято самой
// записью. Повторная активация отменённой записи — нет: её время могло
// быть занято другими, поэтому она проходит полную проверку пересечений
// в сериализуемой транзакции, как при создании.
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	salonRepo   SalonRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		salonRepo:   salonRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if booking.Status == domain.StatusConfirmed {
			// Идемпотентность: повторное подтверждение не ошибка
			result = booking
			return nil
		}

		if !booking.CanBeConfirmed() {
			uc.logger.Warn("ConfirmBooking: booking id=%d has status=%s", req.BookingID, booking.Status)
			return ErrInvalidTransition
		}

		// Отменённая запись больше не занимает время: перед возвратом
		// в строй проверяем пересечения заново
		if booking.IsCancelled() {
			if err := uc.recheckOverlap(txCtx, booking); err != nil {
				return err
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusConfirmed); err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				// Exclusion constraint отклонил возврат записи в строй
				uc.logger.Warn("ConfirmBooking: overlap rejected by database for booking id=%d", req.BookingID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("ConfirmBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrSerialization) {
			uc.logger.Warn("ConfirmBooking: serialization conflict for booking=%d", req.BookingID)
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed", result.ID)

	return &Response{
		ID:           result.ID,
		Reference:    result.Reference.String(),
		Status:       string(result.Status),
		StartInstant: result.StartInstant,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// recheckOverlap повторяет проверку занятости для повторной активации:
// блокирует строку мастера, читает активные записи локального дня
// с FOR UPDATE и ищет пересечение
func (uc *UseCase) recheckOverlap(ctx context.Context, booking *domain.Booking) error {
	staff, err := uc.staffRepo.GetByIDForUpdate(ctx, booking.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("ConfirmBooking: staff id=%d not found", booking.StaffID)
			return fmt.Errorf("%w: staff not found", ErrInvalidTransition)
		}
		uc.logger.Error("ConfirmBooking: failed to lock staff id=%d: %v", booking.StaffID, err)
		return fmt.Errorf("%w: failed to lock staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("ConfirmBooking: staff id=%d is inactive", booking.StaffID)
		return ErrInvalidTransition
	}

	salon, err := uc.salonRepo.GetByID(ctx, booking.SalonID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get salon id=%d: %v", booking.SalonID, err)
		return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	norm, err := timezone.New(salon.Timezone)
	if err != nil {
		uc.logger.Error("ConfirmBooking: bad timezone %q for salon id=%d: %v", salon.Timezone, booking.SalonID, err)
		return fmt.Errorf("%w: bad salon timezone: %v", ErrInternal, err)
	}

	dayStart, dayEnd := norm.DayBounds(norm.LocalDate(booking.StartInstant))
	others, err := uc.bookingRepo.GetByStaffWithFilter(ctx, domain.StaffBookingsFilter{
		StaffID:     booking.StaffID,
		FromInstant: &dayStart,
		ToInstant:   &dayEnd,
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to get bookings for staff=%d: %v", booking.StaffID, err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, other := range others {
		if other.ID == booking.ID || !other.IsBlocking() {
			continue
		}
		if other.OverlapsInstant(booking.StartInstant, booking.EndInstant()) {
			uc.logger.Warn("ConfirmBooking: slot taken by booking id=%d, cannot re-activate id=%d",
				other.ID, booking.ID)
			return ErrSlotNotAvailable
		}
	}

	return nil
}
