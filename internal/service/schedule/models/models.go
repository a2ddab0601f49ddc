package models

import (
	"errors"
	"time"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при недопустимом дне недели
	ErrInvalidWeekday = errors.New("invalid weekday: must be 0 (Sunday) to 6 (Saturday)")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("invalid time: expected HH:MM")

	// ErrInvalidBlockKind возвращается при неизвестном типе блокировки
	ErrInvalidBlockKind = errors.New("invalid block kind: expected dated or recurring")
)

// Request модели

// WorkingPatternRequest шаблон рабочей недели в запросе
type WorkingPatternRequest struct {
	Weekdays   []int   `json:"weekdays"`  // 0 = воскресенье ... 6 = суббота
	StartTime  string  `json:"startTime"` // "09:00"
	EndTime    string  `json:"endTime"`   // "18:00"
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// UpdateScheduleRequest запрос на полную замену расписания мастера
// Пустой список шаблонов — валидный запрос "мастер не работает"
type UpdateScheduleRequest struct {
	Patterns []WorkingPatternRequest `json:"patterns"`
}

// CreateBlockRequest запрос на создание блокировки
type CreateBlockRequest struct {
	Kind      string  `json:"kind"`              // "dated" | "recurring"
	Date      *string `json:"date,omitempty"`    // только для dated, "2026-01-15"
	Weekday   *int    `json:"weekday,omitempty"` // только для recurring
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    string  `json:"reason,omitempty"`
}

// ToDomainPattern конвертирует request-шаблон в domain модель
func (r *WorkingPatternRequest) ToDomainPattern(staffID int64) (domain.WorkingPattern, error) {
	pattern := domain.WorkingPattern{StaffID: staffID}

	days := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		if d < 0 || d > 6 {
			return pattern, ErrInvalidWeekday
		}
		days = append(days, time.Weekday(d))
	}
	pattern.Weekdays = domain.NewWeekdaySet(days...)

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return pattern, ErrInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return pattern, ErrInvalidTime
	}
	pattern.StartTime = start
	pattern.EndTime = end

	// Обеденное окно не валидируется на запись: некорректное окно
	// игнорируется генератором слотов, а не отклоняется здесь
	if r.LunchStart != nil {
		ls, err := types.NewTimeStringFromString(*r.LunchStart)
		if err != nil {
			return pattern, ErrInvalidTime
		}
		pattern.LunchStart = &ls
	}
	if r.LunchEnd != nil {
		le, err := types.NewTimeStringFromString(*r.LunchEnd)
		if err != nil {
			return pattern, ErrInvalidTime
		}
		pattern.LunchEnd = &le
	}

	return pattern, nil
}

// ToDomainBlock конвертирует request в domain модель блокировки
func (r *CreateBlockRequest) ToDomainBlock(staffID int64) (domain.Block, error) {
	block := domain.Block{
		StaffID: staffID,
		Kind:    domain.BlockKind(r.Kind),
		Reason:  r.Reason,
	}

	switch block.Kind {
	case domain.BlockDated, domain.BlockRecurring:
	default:
		return block, ErrInvalidBlockKind
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return block, ErrInvalidDate
		}
		block.Date = &date
	}
	if r.Weekday != nil {
		if *r.Weekday < 0 || *r.Weekday > 6 {
			return block, ErrInvalidWeekday
		}
		w := time.Weekday(*r.Weekday)
		block.Weekday = &w
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return block, ErrInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return block, ErrInvalidTime
	}
	block.StartTime = start
	block.EndTime = end

	return block, nil
}

// Response модели

// WorkingPatternResponse шаблон рабочей недели в ответе
type WorkingPatternResponse struct {
	ID         int64   `json:"id"`
	StaffID    int64   `json:"staffId"`
	Weekdays   []int   `json:"weekdays"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// ScheduleResponse ответ с расписанием мастера
type ScheduleResponse struct {
	StaffID  int64                    `json:"staffId"`
	Patterns []WorkingPatternResponse `json:"patterns"`
}

// BlockResponse блокировка в ответе
type BlockResponse struct {
	ID        int64   `json:"id"`
	StaffID   int64   `json:"staffId"`
	Kind      string  `json:"kind"`
	Date      *string `json:"date,omitempty"`
	Weekday   *int    `json:"weekday,omitempty"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Reason    string  `json:"reason,omitempty"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainPattern конвертирует domain модель в DTO
func FromDomainPattern(p *domain.WorkingPattern) WorkingPatternResponse {
	days := p.Weekdays.Days()
	weekdays := make([]int, len(days))
	for i, d := range days {
		weekdays[i] = int(d)
	}

	resp := WorkingPatternResponse{
		ID:        p.ID,
		StaffID:   p.StaffID,
		Weekdays:  weekdays,
		StartTime: p.StartTime.String(),
		EndTime:   p.EndTime.String(),
	}

	if p.LunchStart != nil {
		ls := p.LunchStart.String()
		resp.LunchStart = &ls
	}
	if p.LunchEnd != nil {
		le := p.LunchEnd.String()
		resp.LunchEnd = &le
	}

	return resp
}

// FromDomainPatterns конвертирует список шаблонов в ответ
func FromDomainPatterns(staffID int64, patterns []domain.WorkingPattern) *ScheduleResponse {
	resp := &ScheduleResponse{
		StaffID:  staffID,
		Patterns: make([]WorkingPatternResponse, len(patterns)),
	}
	for i := range patterns {
		resp.Patterns[i] = FromDomainPattern(&patterns[i])
	}
	return resp
}

// FromDomainBlock конвертирует domain модель блокировки в DTO
func FromDomainBlock(b *domain.Block) BlockResponse {
	resp := BlockResponse{
		ID:        b.ID,
		StaffID:   b.StaffID,
		Kind:      string(b.Kind),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
	}

	if b.Date != nil {
		d := b.Date.Format(domain.DateFormat)
		resp.Date = &d
	}
	if b.Weekday != nil {
		w := int(*b.Weekday)
		resp.Weekday = &w
	}

	return resp
}

// FromDomainBlocks конвертирует список блокировок в ответ
func FromDomainBlocks(blocks []domain.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, len(blocks)),
	}
	for i := range blocks {
		resp.Blocks[i] = FromDomainBlock(&blocks[i])
	}
	return resp
}
