package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/dbmetrics"
	"github.com/akholodov/salon-booking-service/pkg/psqlbuilder"
	"github.com/akholodov/salon-booking-service/pkg/types"
)

var patternColumns = []string{
	"id",
	"staff_id",
	"weekdays",
	"start_time",
	"end_time",
	"lunch_start",
	"lunch_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий шаблонов еженедельного расписания мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaff получает все шаблоны расписания мастера
//
// Пустой результат — это валидный ответ "у мастера нет расписания"
// (выходной каждый день), а не ошибка: ошибки поиска всегда приходят
// через error, генератор слотов различает эти два случая явно
func (r *Repository) GetByStaff(ctx context.Context, staffID int64) ([]domain.WorkingPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(patternColumns...).
		From("staff_schedule").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPatterns(rows)
}

// Create создает шаблон расписания
func (r *Repository) Create(ctx context.Context, pattern *domain.WorkingPattern) (*domain.WorkingPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedule").
		Columns(
			"staff_id",
			"weekdays",
			"start_time",
			"end_time",
			"lunch_start",
			"lunch_end",
		).
		Values(
			pattern.StaffID,
			pattern.Weekdays,
			pattern.StartTime,
			pattern.EndTime,
			pattern.LunchStart,
			pattern.LunchEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pattern.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pattern.CreatedAt = createdAt.Time
	pattern.UpdatedAt = updatedAt.Time

	return pattern, nil
}

// ReplaceForStaff атомарно заменяет весь набор шаблонов мастера
// Используется админским редактором расписания: PUT семантика,
// частичных обновлений нет
func (r *Repository) ReplaceForStaff(ctx context.Context, staffID int64, patterns []domain.WorkingPattern) ([]domain.WorkingPattern, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_schedule").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForStaff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForStaff - execute delete: %v", ErrExecQuery, err)
	}

	created := make([]domain.WorkingPattern, 0, len(patterns))
	for _, pattern := range patterns {
		pattern.StaffID = staffID
		p, err := r.Create(ctx, &pattern)
		if err != nil {
			return nil, err
		}
		created = append(created, *p)
	}

	return created, nil
}

// Delete удаляет шаблон расписания по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_schedule").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatternNotFound
	}

	return nil
}

// scanPatterns сканирует результаты запроса в слайс шаблонов
func scanPatterns(rows *sql.Rows) ([]domain.WorkingPattern, error) {
	patterns := make([]domain.WorkingPattern, 0)

	for rows.Next() {
		var pattern domain.WorkingPattern
		var lunchStart, lunchEnd sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&pattern.ID,
			&pattern.StaffID,
			&pattern.Weekdays,
			&pattern.StartTime,
			&pattern.EndTime,
			&lunchStart,
			&lunchEnd,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPatterns - scan row: %v", ErrScanRow, err)
		}

		if lunchStart.Valid {
			ts := types.TimeString(lunchStart.String)
			pattern.LunchStart = &ts
		}
		if lunchEnd.Valid {
			ts := types.TimeString(lunchEnd.String)
			pattern.LunchEnd = &ts
		}

		pattern.CreatedAt = createdAt.Time
		pattern.UpdatedAt = updatedAt.Time

		patterns = append(patterns, pattern)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPatterns - rows error: %v", ErrScanRow, err)
	}

	return patterns, nil
}
