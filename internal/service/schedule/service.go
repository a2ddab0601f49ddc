package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/akholodov/salon-booking-service/internal/domain"
	blockRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/block"
	staffRepo "github.com/akholodov/salon-booking-service/internal/infra/storage/staff"
	"github.com/akholodov/salon-booking-service/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями и блокировками мастеров
type Service struct {
	scheduleRepo ScheduleRepository
	blockRepo    BlockRepository
	staffRepo    StaffRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	blockRepo BlockRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blockRepo:    blockRepo,
		staffRepo:    staffRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule получает расписание мастера
// Пустой список шаблонов — валидный ответ "мастер не работает"
func (s *Service) GetSchedule(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for staff=%d", staffID)

	if err := s.checkStaffExists(ctx, staffID); err != nil {
		return nil, err
	}

	patterns, err := s.scheduleRepo.GetByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched %d patterns for staff=%d", len(patterns), staffID)
	return models.FromDomainPatterns(staffID, patterns), nil
}

// UpdateSchedule полностью заменяет расписание мастера (PUT-семантика)
// Замена атомарна: читатели видят либо старое расписание, либо новое
func (s *Service) UpdateSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: replacing schedule for staff=%d with %d patterns", staffID, len(req.Patterns))

	if err := s.checkStaffExists(ctx, staffID); err != nil {
		return nil, err
	}

	patterns := make([]domain.WorkingPattern, 0, len(req.Patterns))
	for i, patternReq := range req.Patterns {
		pattern, err := patternReq.ToDomainPattern(staffID)
		if err != nil {
			s.logger.Warn("UpdateSchedule: invalid pattern #%d for staff=%d: %v", i, staffID, err)
			return nil, fmt.Errorf("%w: pattern #%d: %v", ErrInvalidInput, i, err)
		}
		if err := pattern.Validate(); err != nil {
			s.logger.Warn("UpdateSchedule: pattern #%d validation failed for staff=%d: %v", i, staffID, err)
			return nil, fmt.Errorf("%w: pattern #%d: %v", ErrInvalidInput, i, err)
		}
		patterns = append(patterns, pattern)
	}

	var saved []domain.WorkingPattern
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.scheduleRepo.ReplaceForStaff(ctx, staffID, patterns)
		return txErr
	})
	if err != nil {
		s.logger.Error("UpdateSchedule: transaction error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully replaced schedule for staff=%d", staffID)
	return models.FromDomainPatterns(staffID, saved), nil
}

// CreateBlock создает блокировку времени мастера
func (s *Service) CreateBlock(ctx context.Context, staffID int64, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: creating %s block for staff=%d", req.Kind, staffID)

	if err := s.checkStaffExists(ctx, staffID); err != nil {
		return nil, err
	}

	block, err := req.ToDomainBlock(staffID)
	if err != nil {
		s.logger.Warn("CreateBlock: invalid block for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := block.Validate(); err != nil {
		s.logger.Warn("CreateBlock: block validation failed for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%d for staff=%d", created.ID, staffID)
	resp := models.FromDomainBlock(&created)
	return &resp, nil
}

// DeleteBlock удаляет блокировку мастера
func (s *Service) DeleteBlock(ctx context.Context, staffID, blockID int64) error {
	s.logger.Info("DeleteBlock: deleting block id=%d for staff=%d", blockID, staffID)

	if err := s.blockRepo.Delete(ctx, staffID, blockID); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found for staff=%d", blockID, staffID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d for staff=%d", blockID, staffID)
	return nil
}

// ListBlocks получает все блокировки мастера
func (s *Service) ListBlocks(ctx context.Context, staffID int64) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: fetching blocks for staff=%d", staffID)

	if err := s.checkStaffExists(ctx, staffID); err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.ListByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("ListBlocks: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlocks: successfully fetched %d blocks for staff=%d", len(blocks), staffID)
	return models.FromDomainBlocks(blocks), nil
}

// Вспомогательные методы

func (s *Service) checkStaffExists(ctx context.Context, staffID int64) error {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("checkStaffExists: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("checkStaffExists: repository error for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: checkStaffExists - repository error: %v", ErrInternal, err)
	}
	return nil
}
