package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/internal/domain"
	blockRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/service/schedule/models"
	"github.com/akholodov/salon-booking-service/pkg/ptr"
)

type mockScheduleRepo struct {
	patterns []domain.WorkingPattern
	replaced []domain.WorkingPattern
	err      error
}

func (m *mockScheduleRepo) GetByStaff(_ context.Context, _ int64) ([]domain.WorkingPattern, error) {
	return m.patterns, m.err
}

func (m *mockScheduleRepo) ReplaceForStaff(_ context.Context, staffID int64, patterns []domain.WorkingPattern) ([]domain.WorkingPattern, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.replaced = patterns
	saved := make([]domain.WorkingPattern, len(patterns))
	for i, p := range patterns {
		p.ID = int64(i + 1)
		p.StaffID = staffID
		saved[i] = p
	}
	return saved, nil
}

type mockBlockRepo struct {
	blocks    []domain.Block
	created   *domain.Block
	deleteErr error
	err       error
}

func (m *mockBlockRepo) Create(_ context.Context, block domain.Block) (domain.Block, error) {
	if m.err != nil {
		return domain.Block{}, m.err
	}
	block.ID = 1
	m.created = &block
	return block, nil
}

func (m *mockBlockRepo) Delete(_ context.Context, _, _ int64) error {
	return m.deleteErr
}

func (m *mockBlockRepo) ListByStaff(_ context.Context, _ int64) ([]domain.Block, error) {
	return m.blocks, m.err
}

func (m *mockBlockRepo) ListForDay(_ context.Context, _ int64, _ time.Time, _ time.Weekday) ([]domain.Block, error) {
	return m.blocks, m.err
}

type mockStaffRepo struct {
	err error
}

func (m *mockStaffRepo) GetByID(_ context.Context, staffID int64) (domain.Staff, error) {
	if m.err != nil {
		return domain.Staff{}, m.err
	}
	return domain.Staff{ID: staffID, SalonID: 1, Active: true}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	scheduleRepo *mockScheduleRepo
	blockRepo    *mockBlockRepo
	staffRepo    *mockStaffRepo
}

func newFixture() *fixture {
	return &fixture{
		scheduleRepo: &mockScheduleRepo{},
		blockRepo:    &mockBlockRepo{},
		staffRepo:    &mockStaffRepo{},
	}
}

func (f *fixture) buildService() *Service {
	return NewService(f.scheduleRepo, f.blockRepo, f.staffRepo, fakeTxManager{}, nopLogger{})
}

func TestService_UpdateSchedule(t *testing.T) {
	t.Run("replaces the schedule", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		resp, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			Patterns: []models.WorkingPatternRequest{{
				Weekdays:   []int{1, 2, 3, 4, 5},
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr("12:00"),
				LunchEnd:   ptr.Ptr("13:00"),
			}},
		})
		require.NoError(t, err)

		assert.Len(t, resp.Patterns, 1)
		assert.Len(t, f.scheduleRepo.replaced, 1)
		assert.Equal(t, int64(10), f.scheduleRepo.replaced[0].StaffID)
	})

	t.Run("empty pattern list means the staff member does not work", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		resp, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{})
		require.NoError(t, err)
		assert.Empty(t, resp.Patterns)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			Patterns: []models.WorkingPatternRequest{{
				Weekdays:  []int{1},
				StartTime: "18:00",
				EndTime:   "09:00",
			}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, f.scheduleRepo.replaced)
	})

	t.Run("rejects weekday out of range", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			Patterns: []models.WorkingPatternRequest{{
				Weekdays:  []int{7},
				StartTime: "09:00",
				EndTime:   "18:00",
			}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("lunch outside working hours is stored, not rejected", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		_, err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			Patterns: []models.WorkingPatternRequest{{
				Weekdays:   []int{1},
				StartTime:  "09:00",
				EndTime:    "13:00",
				LunchStart: ptr.Ptr("14:00"),
				LunchEnd:   ptr.Ptr("15:00"),
			}},
		})
		assert.NoError(t, err)
	})

	t.Run("staff not found", func(t *testing.T) {
		f := newFixture()
		f.staffRepo.err = staffRepo.ErrStaffNotFound
		svc := f.buildService()

		_, err := svc.UpdateSchedule(context.Background(), 99, &models.UpdateScheduleRequest{})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestService_CreateBlock(t *testing.T) {
	t.Run("dated block", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		resp, err := svc.CreateBlock(context.Background(), 10, &models.CreateBlockRequest{
			Kind:      "dated",
			Date:      ptr.Ptr("2026-09-07"),
			StartTime: "10:00",
			EndTime:   "12:00",
			Reason:    "personal appointment",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "dated", resp.Kind)
		require.NotNil(t, f.blockRepo.created)
		assert.Equal(t, domain.BlockDated, f.blockRepo.created.Kind)
	})

	t.Run("recurring block", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		resp, err := svc.CreateBlock(context.Background(), 10, &models.CreateBlockRequest{
			Kind:      "recurring",
			Weekday:   ptr.Ptr(1),
			StartTime: "13:00",
			EndTime:   "14:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "recurring", resp.Kind)
	})

	t.Run("dated block without a date is rejected", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		_, err := svc.CreateBlock(context.Background(), 10, &models.CreateBlockRequest{
			Kind:      "dated",
			StartTime: "10:00",
			EndTime:   "12:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		_, err := svc.CreateBlock(context.Background(), 10, &models.CreateBlockRequest{
			Kind:      "vacation",
			StartTime: "10:00",
			EndTime:   "12:00",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_DeleteBlock(t *testing.T) {
	t.Run("deletes the block", func(t *testing.T) {
		f := newFixture()
		svc := f.buildService()

		assert.NoError(t, svc.DeleteBlock(context.Background(), 10, 1))
	})

	t.Run("unknown block", func(t *testing.T) {
		f := newFixture()
		f.blockRepo.deleteErr = blockRepo.ErrBlockNotFound
		svc := f.buildService()

		err := svc.DeleteBlock(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrBlockNotFound)
	})
}
