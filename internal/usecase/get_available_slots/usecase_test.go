package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/internal/domain"
	salonRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/salon"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	"github.com/akholodov/salon-booking-service/pkg/ptr"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

// --- mocks ---

type mockScheduleRepo struct {
	patterns []domain.WorkingPattern
	err      error
}

func (m *mockScheduleRepo) GetByStaff(_ context.Context, _ int64) ([]domain.WorkingPattern, error) {
	return m.patterns, m.err
}

type mockBlockRepo struct {
	blocks []domain.Block
	err    error
}

func (m *mockBlockRepo) ListForDay(_ context.Context, _ int64, _ time.Time, _ time.Weekday) ([]domain.Block, error) {
	return m.blocks, m.err
}

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByStaffWithFilter(_ context.Context, _ domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

type mockStaffRepo struct {
	staff domain.Staff
	err   error
}

func (m *mockStaffRepo) GetByID(_ context.Context, _ int64) (domain.Staff, error) {
	return m.staff, m.err
}

type mockSalonRepo struct {
	salon domain.Salon
	err   error
}

func (m *mockSalonRepo) GetByID(_ context.Context, _ int64) (domain.Salon, error) {
	return m.salon, m.err
}

type mockCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (m *mockCatalogClient) GetActiveService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	return m.service, m.err
}

type mockConfigService struct {
	granularity int
}

func (m *mockConfigService) DeriveGranularity(_ context.Context, _ domain.Staff) int {
	return m.granularity
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- fixtures ---

type fixture struct {
	scheduleRepo  *mockScheduleRepo
	blockRepo     *mockBlockRepo
	bookingRepo   *mockBookingRepo
	staffRepo     *mockStaffRepo
	salonRepo     *mockSalonRepo
	catalogClient *mockCatalogClient
	configService *mockConfigService
	now           time.Time
}

// 2026-09-07 is a Monday; the salon runs on Sao Paulo time (UTC-3)
var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func newFixture() *fixture {
	workweek := domain.NewWeekdaySet(
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	)
	return &fixture{
		scheduleRepo: &mockScheduleRepo{
			patterns: []domain.WorkingPattern{{
				ID:         1,
				StaffID:    10,
				Weekdays:   workweek,
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr(types.TimeString("12:00")),
				LunchEnd:   ptr.Ptr(types.TimeString("13:00")),
			}},
		},
		blockRepo:   &mockBlockRepo{},
		bookingRepo: &mockBookingRepo{},
		staffRepo: &mockStaffRepo{
			staff: domain.Staff{ID: 10, SalonID: 1, Active: true},
		},
		salonRepo: &mockSalonRepo{
			salon: domain.Salon{ID: 1, Timezone: "America/Sao_Paulo", Active: true},
		},
		catalogClient: &mockCatalogClient{
			service: &catalogservice.Service{ID: 100, SalonID: 1, DurationMinutes: 30, Active: true},
		},
		configService: &mockConfigService{granularity: 30},
		now:           testNow,
	}
}

func (f *fixture) buildUseCase() *UseCase {
	uc := NewUseCase(
		f.scheduleRepo,
		f.blockRepo,
		f.bookingRepo,
		f.staffRepo,
		f.salonRepo,
		f.catalogClient,
		f.configService,
		60, // minNoticeMinutes
		90, // advanceBookingDays
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: f.now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		SalonID:   1,
		StaffID:   10,
		ServiceID: 100,
		Date:      testDate,
	}
}

func startTimes(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

// --- tests ---

func TestUseCase_Execute_FullDay(t *testing.T) {
	f := newFixture()
	uc := f.buildUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "America/Sao_Paulo", resp.Timezone)
	// 09:00-18:00 minus lunch 12:00-13:00, 30-minute grid
	got := startTimes(resp.Slots)
	assert.Len(t, got, 16)
	assert.Equal(t, "09:00", got[0])
	assert.Equal(t, "11:30", got[5])
	assert.Equal(t, "13:00", got[6])
	assert.Equal(t, "17:30", got[15])
	for _, s := range got {
		assert.NotEqual(t, "12:00", s)
		assert.NotEqual(t, "12:30", s)
	}
}

func TestUseCase_Execute_BookingAndBlockCarvedOut(t *testing.T) {
	f := newFixture()

	// confirmed booking 10:00-11:00 local = 13:00-14:00 UTC
	f.bookingRepo.bookings = []*domain.Booking{{
		ID:              1,
		StaffID:         10,
		StartInstant:    time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}}

	// dated block 16:00-18:00
	f.blockRepo.blocks = []domain.Block{{
		ID:        1,
		StaffID:   10,
		Kind:      domain.BlockDated,
		Date:      &testDate,
		StartTime: "16:00",
		EndTime:   "18:00",
	}}

	uc := f.buildUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:30",
		"11:00", "11:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	}, startTimes(resp.Slots))
}

func TestUseCase_Execute_CancelledBookingDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.bookingRepo.bookings = []*domain.Booking{{
		ID:              1,
		StaffID:         10,
		StartInstant:    time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusCancelledByClient,
	}}

	uc := f.buildUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Contains(t, startTimes(resp.Slots), "10:00")
	assert.Contains(t, startTimes(resp.Slots), "10:30")
}

func TestUseCase_Execute_DayOff(t *testing.T) {
	f := newFixture()
	f.scheduleRepo.patterns = nil

	uc := f.buildUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_SameDayNoticeCutoff(t *testing.T) {
	f := newFixture()
	// 13:10 UTC = 10:10 local on the requested date; with 60 minutes
	// notice the first bookable grid start is 11:30
	f.now = time.Date(2026, 9, 7, 13, 10, 0, 0, time.UTC)

	uc := f.buildUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	got := startTimes(resp.Slots)
	require.NotEmpty(t, got)
	assert.Equal(t, "11:30", got[0])
	assert.NotContains(t, got, "11:00")
}

func TestUseCase_Execute_StaffErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.staffRepo.err = staffRepo.ErrStaffNotFound

		_, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture()
		f.staffRepo.staff.Active = false

		_, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffInactive)
	})

	t.Run("wrong salon", func(t *testing.T) {
		f := newFixture()
		f.staffRepo.staff.SalonID = 99

		_, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffInactive)
	})
}

func TestUseCase_Execute_SalonNotFound(t *testing.T) {
	f := newFixture()
	f.salonRepo.err = salonRepo.ErrSalonNotFound

	_, err := f.buildUseCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	f.catalogClient.service = nil
	f.catalogClient.err = catalogservice.ErrServiceNotFound

	_, err := f.buildUseCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_StoreFailureIsNotEmptyList(t *testing.T) {
	t.Run("schedule store down", func(t *testing.T) {
		f := newFixture()
		f.scheduleRepo.err = errors.New("connection refused")

		resp, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
		assert.Nil(t, resp)
	})

	t.Run("catalog down", func(t *testing.T) {
		f := newFixture()
		f.catalogClient.service = nil
		f.catalogClient.err = catalogservice.ErrUnavailable

		resp, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
		assert.Nil(t, resp)
	})

	t.Run("booking store down", func(t *testing.T) {
		f := newFixture()
		f.bookingRepo.err = errors.New("connection refused")

		resp, err := f.buildUseCase().Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
		assert.Nil(t, resp)
	})
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	t.Run("date in the past", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		_, err := f.buildUseCase().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date beyond the horizon", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.Date = time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)

		_, err := f.buildUseCase().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("invalid ids", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ServiceID = 0

		_, err := f.buildUseCase().Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
