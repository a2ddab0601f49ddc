package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akholodov/salon-booking-service/internal/domain"
	"github.com/akholodov/salon-booking-service/pkg/dbmetrics"
	"github.com/akholodov/salon-booking-service/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"salon_id",
	"display_name",
	"active",
	"slot_granularity_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, staffID int64) (domain.Staff, error) {
	return r.get(ctx, staffID, false)
}

// GetByIDForUpdate получает мастера по ID с блокировкой строки.
//
// Внутри сериализуемой транзакции FOR UPDATE на строке мастера
// выстраивает все резервирования одного мастера в очередь: два
// конкурирующих запроса на один слот никогда не проверяют занятость
// одновременно.
func (r *Repository) GetByIDForUpdate(ctx context.Context, staffID int64) (domain.Staff, error) {
	return r.get(ctx, staffID, true)
}

func (r *Repository) get(ctx context.Context, staffID int64, forUpdate bool) (domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": staffID})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.Staff{}, fmt.Errorf("%w: get - build select: %v", ErrBuildQuery, err)
	}

	var staff domain.Staff
	var granularity sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&staff.ID,
		&staff.SalonID,
		&staff.DisplayName,
		&staff.Active,
		&granularity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Staff{}, ErrStaffNotFound
		}
		return domain.Staff{}, fmt.Errorf("%w: get - exec select: %v", ErrExecQuery, err)
	}

	if granularity.Valid {
		g := int(granularity.Int64)
		staff.SlotGranularityMinutes = &g
	}
	staff.CreatedAt = createdAt.Time
	staff.UpdatedAt = updatedAt.Time

	return staff, nil
}

// UpdateSlotGranularity задает или сбрасывает явный шаг сетки слотов мастера
func (r *Repository) UpdateSlotGranularity(ctx context.Context, staffID int64, granularityMinutes *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var value interface{}
	if granularityMinutes != nil {
		value = *granularityMinutes
	}

	query, args, err := psqlbuilder.Update("staff").
		Set("slot_granularity_minutes", value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotGranularity - build update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotGranularity - exec update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotGranularity - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrStaffNotFound
	}

	return nil
}
