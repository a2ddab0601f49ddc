package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/akholodov/salon-booking-service/internal/domain"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/service/config/models"
)

// Service сервис конфигурации сетки слотов.
//
// Шаг сетки (granularity) выводится политикой, а не хранится как
// единственная истина:
//  1. явный шаг мастера, если задан;
//  2. длительность услуги, если мастер оказывает ровно одну активную услугу;
//  3. дефолтный шаг из конфигурации сервиса.
//
// Результат всегда поднимается до минимального шага из конфигурации:
// минимум — настройка, а не константа, исторически он уже менялся.
type Service struct {
	staffRepo          StaffRepository
	catalogClient      CatalogServiceClient
	defaultGranularity int
	minGranularity     int
	logger             Logger
}

// NewService создает новый экземпляр сервиса конфигурации слотов
func NewService(
	staffRepo StaffRepository,
	catalogClient CatalogServiceClient,
	defaultGranularity int,
	minGranularity int,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:          staffRepo,
		catalogClient:      catalogClient,
		defaultGranularity: defaultGranularity,
		minGranularity:     minGranularity,
		logger:             logger,
	}
}

// DeriveGranularity вычисляет эффективный шаг сетки слотов мастера
func (s *Service) DeriveGranularity(ctx context.Context, staff domain.Staff) int {
	if staff.SlotGranularityMinutes != nil {
		return s.clamp(*staff.SlotGranularityMinutes)
	}

	// Ровно одна активная услуга — ее длительность и есть шаг.
	// Ноль услуг или несколько — дефолт: выбирать одну из нескольких
	// длительностей было бы произволом
	services, err := s.catalogClient.ListStaffServices(ctx, staff.ID)
	if err != nil {
		s.logger.Warn("DeriveGranularity: catalog unavailable for staff=%d, using default: %v", staff.ID, err)
		return s.clamp(s.defaultGranularity)
	}

	active := make([]int, 0, len(services))
	for _, svc := range services {
		if svc.Active && svc.DurationMinutes > 0 {
			active = append(active, svc.DurationMinutes)
		}
	}

	if len(active) == 1 {
		return s.clamp(active[0])
	}

	return s.clamp(s.defaultGranularity)
}

// GetSlotConfig возвращает конфигурацию сетки слотов мастера
func (s *Service) GetSlotConfig(ctx context.Context, staffID int64) (*models.SlotConfigResponse, error) {
	s.logger.Info("GetSlotConfig: fetching slot config for staff=%d", staffID)

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetSlotConfig: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetSlotConfig: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetSlotConfig - repository error: %v", ErrInternal, err)
	}

	return &models.SlotConfigResponse{
		StaffID:                     staff.ID,
		ExplicitGranularityMinutes:  staff.SlotGranularityMinutes,
		EffectiveGranularityMinutes: s.DeriveGranularity(ctx, staff),
	}, nil
}

// UpdateSlotConfig задает или сбрасывает явный шаг сетки слотов мастера
func (s *Service) UpdateSlotConfig(ctx context.Context, staffID int64, req *models.UpdateSlotConfigRequest) (*models.SlotConfigResponse, error) {
	s.logger.Info("UpdateSlotConfig: updating slot config for staff=%d, granularity=%v", staffID, req.GranularityMinutes)

	if req.GranularityMinutes != nil && *req.GranularityMinutes < s.minGranularity {
		s.logger.Warn("UpdateSlotConfig: granularity=%d below minimum %d for staff=%d",
			*req.GranularityMinutes, s.minGranularity, staffID)
		return nil, fmt.Errorf("%w: granularity must be at least %d minutes", ErrInvalidInput, s.minGranularity)
	}

	if err := s.staffRepo.UpdateSlotGranularity(ctx, staffID, req.GranularityMinutes); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateSlotConfig: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateSlotConfig: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSlotConfig - repository error: %v", ErrInternal, err)
	}

	return s.GetSlotConfig(ctx, staffID)
}

// clamp поднимает шаг до минимально допустимого
func (s *Service) clamp(granularity int) int {
	if granularity < s.minGranularity {
		return s.minGranularity
	}
	return granularity
}
