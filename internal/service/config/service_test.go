package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akholodov/salon-booking-service/internal/domain"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/integrations/catalogservice"
	"github.com/akholodov/salon-booking-service/internal/service/config/models"
	"github.com/akholodov/salon-booking-service/pkg/ptr"
)

type mockStaffRepo struct {
	staff       domain.Staff
	getErr      error
	updateErr   error
	lastUpdated *int
}

func (m *mockStaffRepo) GetByID(_ context.Context, _ int64) (domain.Staff, error) {
	return m.staff, m.getErr
}

func (m *mockStaffRepo) UpdateSlotGranularity(_ context.Context, _ int64, granularityMinutes *int) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastUpdated = granularityMinutes
	m.staff.SlotGranularityMinutes = granularityMinutes
	return nil
}

type mockCatalogClient struct {
	services []catalogservice.Service
	err      error
}

func (m *mockCatalogClient) ListStaffServices(_ context.Context, _ int64) ([]catalogservice.Service, error) {
	return m.services, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(staff *mockStaffRepo, catalog *mockCatalogClient) *Service {
	return NewService(staff, catalog, 30, 15, nopLogger{})
}

func TestService_DeriveGranularity(t *testing.T) {
	tests := []struct {
		name     string
		staff    domain.Staff
		services []catalogservice.Service
		err      error
		want     int
	}{
		{
			name:  "explicit setting wins",
			staff: domain.Staff{ID: 10, SlotGranularityMinutes: ptr.Ptr(45)},
			services: []catalogservice.Service{
				{ID: 1, DurationMinutes: 60, Active: true},
			},
			want: 45,
		},
		{
			name:  "explicit setting below minimum is clamped",
			staff: domain.Staff{ID: 10, SlotGranularityMinutes: ptr.Ptr(5)},
			want:  15,
		},
		{
			name:  "single active service drives the grid",
			staff: domain.Staff{ID: 10},
			services: []catalogservice.Service{
				{ID: 1, DurationMinutes: 40, Active: true},
			},
			want: 40,
		},
		{
			name:  "inactive services do not count",
			staff: domain.Staff{ID: 10},
			services: []catalogservice.Service{
				{ID: 1, DurationMinutes: 40, Active: true},
				{ID: 2, DurationMinutes: 90, Active: false},
			},
			want: 40,
		},
		{
			name:  "multiple active services fall back to default",
			staff: domain.Staff{ID: 10},
			services: []catalogservice.Service{
				{ID: 1, DurationMinutes: 40, Active: true},
				{ID: 2, DurationMinutes: 90, Active: true},
			},
			want: 30,
		},
		{
			name:  "no services fall back to default",
			staff: domain.Staff{ID: 10},
			want:  30,
		},
		{
			name:  "catalog failure falls back to default",
			staff: domain.Staff{ID: 10},
			err:   catalogservice.ErrUnavailable,
			want:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(
				&mockStaffRepo{staff: tt.staff},
				&mockCatalogClient{services: tt.services, err: tt.err},
			)

			got := svc.DeriveGranularity(context.Background(), tt.staff)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetSlotConfig(t *testing.T) {
	t.Run("returns explicit and effective values", func(t *testing.T) {
		staff := &mockStaffRepo{staff: domain.Staff{ID: 10, SlotGranularityMinutes: ptr.Ptr(45)}}
		svc := newService(staff, &mockCatalogClient{})

		resp, err := svc.GetSlotConfig(context.Background(), 10)
		require.NoError(t, err)

		assert.Equal(t, int64(10), resp.StaffID)
		require.NotNil(t, resp.ExplicitGranularityMinutes)
		assert.Equal(t, 45, *resp.ExplicitGranularityMinutes)
		assert.Equal(t, 45, resp.EffectiveGranularityMinutes)
	})

	t.Run("staff not found", func(t *testing.T) {
		staff := &mockStaffRepo{getErr: staffRepo.ErrStaffNotFound}
		svc := newService(staff, &mockCatalogClient{})

		_, err := svc.GetSlotConfig(context.Background(), 10)
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("repository failure wraps internal error", func(t *testing.T) {
		staff := &mockStaffRepo{getErr: errors.New("connection refused")}
		svc := newService(staff, &mockCatalogClient{})

		_, err := svc.GetSlotConfig(context.Background(), 10)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_UpdateSlotConfig(t *testing.T) {
	t.Run("sets explicit granularity", func(t *testing.T) {
		staff := &mockStaffRepo{staff: domain.Staff{ID: 10}}
		svc := newService(staff, &mockCatalogClient{})

		resp, err := svc.UpdateSlotConfig(context.Background(), 10, &models.UpdateSlotConfigRequest{
			GranularityMinutes: ptr.Ptr(20),
		})
		require.NoError(t, err)

		require.NotNil(t, staff.lastUpdated)
		assert.Equal(t, 20, *staff.lastUpdated)
		assert.Equal(t, 20, resp.EffectiveGranularityMinutes)
	})

	t.Run("null clears the explicit setting", func(t *testing.T) {
		staff := &mockStaffRepo{staff: domain.Staff{ID: 10, SlotGranularityMinutes: ptr.Ptr(45)}}
		svc := newService(staff, &mockCatalogClient{})

		resp, err := svc.UpdateSlotConfig(context.Background(), 10, &models.UpdateSlotConfigRequest{})
		require.NoError(t, err)

		assert.Nil(t, resp.ExplicitGranularityMinutes)
		assert.Equal(t, 30, resp.EffectiveGranularityMinutes)
	})

	t.Run("rejects granularity below minimum", func(t *testing.T) {
		staff := &mockStaffRepo{staff: domain.Staff{ID: 10}}
		svc := newService(staff, &mockCatalogClient{})

		_, err := svc.UpdateSlotConfig(context.Background(), 10, &models.UpdateSlotConfigRequest{
			GranularityMinutes: ptr.Ptr(10),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, staff.lastUpdated)
	})

	t.Run("staff not found", func(t *testing.T) {
		staff := &mockStaffRepo{updateErr: staffRepo.ErrStaffNotFound}
		svc := newService(staff, &mockCatalogClient{})

		_, err := svc.UpdateSlotConfig(context.Background(), 10, &models.UpdateSlotConfigRequest{
			GranularityMinutes: ptr.Ptr(30),
		})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}
