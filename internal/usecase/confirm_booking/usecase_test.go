package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/internal/domain"
	bookingRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/booking"
)

// --- mocks ---

type mockBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	others        []*domain.Booking
	updateErr     error
	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := *m.booking
	return &cp, nil
}

func (m *mockBookingRepo) GetByStaffWithFilter(_ context.Context, _ domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	return m.others, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

type mockStaffRepo struct {
	staff domain.Staff
	err   error
}

func (m *mockStaffRepo) GetByIDForUpdate(_ context.Context, _ int64) (domain.Staff, error) {
	return m.staff, m.err
}

type mockSalonRepo struct {
	salon domain.Salon
	err   error
}

func (m *mockSalonRepo) GetByID(_ context.Context, _ int64) (domain.Salon, error) {
	return m.salon, m.err
}

type fakeTxManager struct {
	commitErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixtures ---

var testStart = time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC)

type fixture struct {
	bookingRepo *mockBookingRepo
	staffRepo   *mockStaffRepo
	salonRepo   *mockSalonRepo
	txManager   *fakeTxManager
}

func newFixture(status domain.BookingStatus) *fixture {
	return &fixture{
		bookingRepo: &mockBookingRepo{
			booking: &domain.Booking{
				ID:              5,
				Reference:       uuid.New(),
				SalonID:         1,
				StaffID:         10,
				ClientID:        7,
				StartInstant:    testStart,
				DurationMinutes: 60,
				Status:          status,
			},
		},
		staffRepo: &mockStaffRepo{
			staff: domain.Staff{ID: 10, SalonID: 1, Active: true},
		},
		salonRepo: &mockSalonRepo{
			salon: domain.Salon{ID: 1, Timezone: "America/Sao_Paulo", Active: true},
		},
		txManager: &fakeTxManager{},
	}
}

func (f *fixture) buildUseCase() *UseCase {
	return NewUseCase(f.bookingRepo, f.staffRepo, f.salonRepo, f.txManager, nopLogger{})
}

func request() *Request {
	return &Request{BookingID: 5, UserID: 7}
}

// --- tests ---

func TestUseCase_Execute_PendingToConfirmed(t *testing.T) {
	f := newFixture(domain.StatusPending)

	resp, err := f.buildUseCase().Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(5), f.bookingRepo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, f.bookingRepo.updatedStatus)
}

func TestUseCase_Execute_AlreadyConfirmedIsIdempotent(t *testing.T) {
	f := newFixture(domain.StatusConfirmed)

	resp, err := f.buildUseCase().Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// no second status write
	assert.Zero(t, f.bookingRepo.updatedID)
}

func TestUseCase_Execute_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(status)

			_, err := f.buildUseCase().Execute(context.Background(), request())
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture(domain.StatusPending)
	f.bookingRepo.getErr = bookingRepo.ErrBookingNotFound

	_, err := f.buildUseCase().Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_ReactivateCancelled(t *testing.T) {
	t.Run("slot still free", func(t *testing.T) {
		f := newFixture(domain.StatusCancelledByClient)

		resp, err := f.buildUseCase().Execute(context.Background(), request())
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	})

	t.Run("slot taken by another booking", func(t *testing.T) {
		f := newFixture(domain.StatusCancelledBySalon)
		f.bookingRepo.others = []*domain.Booking{{
			ID:              99,
			StaffID:         10,
			StartInstant:    testStart.Add(30 * time.Minute),
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		}}

		_, err := f.buildUseCase().Execute(context.Background(), request())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("own row and cancelled rows are skipped", func(t *testing.T) {
		f := newFixture(domain.StatusCancelledByClient)
		f.bookingRepo.others = []*domain.Booking{
			{
				ID:              5, // the booking being re-activated
				StaffID:         10,
				StartInstant:    testStart,
				DurationMinutes: 60,
				Status:          domain.StatusCancelledByClient,
			},
			{
				ID:              77,
				StaffID:         10,
				StartInstant:    testStart,
				DurationMinutes: 60,
				Status:          domain.StatusCancelledBySalon,
			},
		}

		_, err := f.buildUseCase().Execute(context.Background(), request())
		assert.NoError(t, err)
	})

	t.Run("inactive staff cannot take re-activations", func(t *testing.T) {
		f := newFixture(domain.StatusCancelledByClient)
		f.staffRepo.staff.Active = false

		_, err := f.buildUseCase().Execute(context.Background(), request())
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestUseCase_Execute_ConflictMapping(t *testing.T) {
	t.Run("exclusion constraint on update", func(t *testing.T) {
		f := newFixture(domain.StatusCancelledByClient)
		f.bookingRepo.updateErr = bookingRepo.ErrOverlap

		_, err := f.buildUseCase().Execute(context.Background(), request())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("serialization failure at commit", func(t *testing.T) {
		f := newFixture(domain.StatusPending)
		f.txManager.commitErr = bookingRepo.ErrSerialization

		_, err := f.buildUseCase().Execute(context.Background(), request())
		assert.ErrorIs(t, err, ErrConflict)
	})
}
