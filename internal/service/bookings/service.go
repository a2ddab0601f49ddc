package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/akholodov/salon-booking-service/internal/domain"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свою запись; запросы от имени салона проходят
// через доверенный заголовок и проверяются на принадлежность салону
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStaffBookings получает записи мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду (UTC-инстанты), статусу и
// включению отменённых записей
func (s *Service) GetStaffBookings(ctx context.Context, req *models.GetStaffBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetStaffBookings: fetching bookings for staff=%d", req.StaffID)
	if req.FromInstant != nil && req.ToInstant != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.FromInstant.Format("2006-01-02"), req.ToInstant.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем, что мастер существует: пустой список для чужого ID
	// маскировал бы ошибку клиента
	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffBookings: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffBookings: staff repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffBookings - staff repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStaffBookings: invalid filter for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStaffBookings: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffBookings: successfully fetched %d bookings for staff=%d", len(bookings), req.StaffID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись (cancelled_by_client),
// любая другая отмена считается отменой со стороны салона (cancelled_by_salon)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены по инициатору
	cancelStatus := domain.StatusCancelledBySalon
	if booking.ClientID == req.UserID {
		cancelStatus = domain.StatusCancelledByClient
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус записи (completed, no_show и т.д.)
// Переход в confirmed идёт через отдельный usecase с повторной
// проверкой занятости, сюда он не попадает
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Подтверждение и повторная активация требуют проверки занятости
	if newStatus == domain.StatusConfirmed && booking.Status != domain.StatusConfirmed {
		s.logger.Warn("UpdateStatus: confirm of booking id=%d must go through the confirm endpoint", bookingID)
		return fmt.Errorf("%w: use the confirm endpoint for status=confirmed", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к записи
func (s *Service) checkUserAccess(_ context.Context, booking *domain.Booking, userID int64) error {
	if booking.ClientID == userID {
		return nil
	}
	return ErrAccessDenied
}
