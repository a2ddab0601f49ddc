package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/internal/domain"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/service/bookings/models"
)

type mockBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	list         []*domain.Booking
	listErr      error
	cancelStatus domain.BookingStatus
	cancelReason string
	updateStatus domain.BookingStatus
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := *m.booking
	return &cp, nil
}

func (m *mockBookingRepo) GetByClientID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.list, m.listErr
}

func (m *mockBookingRepo) GetByStaffWithFilter(_ context.Context, _ domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	return m.list, m.listErr
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	m.updateStatus = status
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	m.cancelStatus = status
	m.cancelReason = reason
	return nil
}

type mockStaffRepo struct {
	staff domain.Staff
	err   error
}

func (m *mockStaffRepo) GetByID(_ context.Context, _ int64) (domain.Staff, error) {
	return m.staff, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              5,
		Reference:       uuid.New(),
		SalonID:         1,
		StaffID:         10,
		ClientID:        7,
		StartInstant:    time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("owner sees the booking", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 5, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("another client is rejected", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 5, 8)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 5, 7)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("client cancelling own booking", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
			UserID:             7,
			CancellationReason: "plans changed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, repo.cancelStatus)
		assert.Equal(t, "plans changed", repo.cancelReason)
	})

	t.Run("salon-side cancellation", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1000})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledBySalon, repo.cancelStatus)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusCompleted)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 7})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled booking cannot be cancelled again", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusCancelledByClient)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 7})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("mark completed", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
			UserID: 1000,
			Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, repo.updateStatus)
	})

	t.Run("confirm must go through the confirm endpoint", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
			UserID: 1000,
			Status: "confirmed",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &mockBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, &mockStaffRepo{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{
			UserID: 1000,
			Status: "done",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetStaffBookings(t *testing.T) {
	t.Run("unknown staff is an error, not an empty list", func(t *testing.T) {
		repo := &mockBookingRepo{}
		svc := NewService(repo, &mockStaffRepo{err: staffRepo.ErrStaffNotFound}, nopLogger{})

		_, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{StaffID: 99})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("lists bookings for existing staff", func(t *testing.T) {
		repo := &mockBookingRepo{list: []*domain.Booking{testBooking(domain.StatusConfirmed)}}
		svc := NewService(repo, &mockStaffRepo{staff: domain.Staff{ID: 10, Active: true}}, nopLogger{})

		resp, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{StaffID: 10})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})
}
