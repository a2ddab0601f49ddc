package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/dbmetrics"
	"github.com/akholodov/salon-booking-service/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"staff_id",
	"kind",
	"block_date",
	"weekday",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий блокировок расписания (отпуска, перерывы, планерки)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку и возвращает ее с заполненным ID
func (r *Repository) Create(ctx context.Context, block domain.Block) (domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var blockDate interface{}
	if block.Date != nil {
		blockDate = block.Date.Format(domain.DateFormat)
	}
	var weekday interface{}
	if block.Weekday != nil {
		weekday = int(*block.Weekday)
	}

	query, args, err := psqlbuilder.Insert("schedule_blocks").
		Columns("staff_id", "kind", "block_date", "weekday", "start_time", "end_time", "reason").
		Values(block.StaffID, string(block.Kind), blockDate, weekday, block.StartTime, block.EndTime, block.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Block{}, fmt.Errorf("%w: Create - build insert: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt, &updatedAt)
	if err != nil {
		return domain.Block{}, fmt.Errorf("%w: Create - exec insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time
	return block, nil
}

// Delete удаляет блокировку мастера по ID
func (r *Repository) Delete(ctx context.Context, staffID, blockID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_blocks").
		Where(squirrel.Eq{"id": blockID, "staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - exec delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListByStaff получает все блокировки мастера
func (r *Repository) ListByStaff(ctx context.Context, staffID int64) ([]domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStaff - exec select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// ListForDay получает блокировки, действующие в конкретный день:
// датированные на эту дату плюс повторяющиеся на этот день недели
func (r *Repository) ListForDay(ctx context.Context, staffID int64, date time.Time, weekday time.Weekday) ([]domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Or{
			squirrel.Eq{"kind": string(domain.BlockDated), "block_date": date.Format(domain.DateFormat)},
			squirrel.Eq{"kind": string(domain.BlockRecurring), "weekday": int(weekday)},
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - exec select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

func scanBlocks(rows *sql.Rows) ([]domain.Block, error) {
	blocks := make([]domain.Block, 0)

	for rows.Next() {
		var block domain.Block
		var kind string
		var blockDate sql.NullTime
		var weekday sql.NullInt64
		var reason sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.StaffID,
			&kind,
			&blockDate,
			&weekday,
			&block.StartTime,
			&block.EndTime,
			&reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.Kind = domain.BlockKind(kind)
		if blockDate.Valid {
			d := blockDate.Time
			block.Date = &d
		}
		if weekday.Valid {
			w := time.Weekday(weekday.Int64)
			block.Weekday = &w
		}
		block.Reason = reason.String
		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time

		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows iteration: %v", ErrScanRow, err)
	}

	return blocks, nil
}
