package salon

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

// Repository репозиторий салонов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает салон по ID. Основной потребитель — нормализатор
// таймзон: зона салона нужна на каждый расчет доступности.
func (r *Repository) GetByID(ctx context.Context, salonID int64) (domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "timezone", "active", "created_at", "updated_at").
		From("salons").
		Where(squirrel.Eq{"id": salonID}).
		ToSql()
	if err != nil {
		return domain.Salon{}, fmt.Errorf("%w: GetByID - build select: %v", ErrBuildQuery, err)
	}

	var salon domain.Salon
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&salon.Name,
		&salon.Timezone,
		&salon.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Salon{}, ErrSalonNotFound
		}
		return domain.Salon{}, fmt.Errorf("%w: GetByID - exec select: %v", ErrExecQuery, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return salon, nil
}
