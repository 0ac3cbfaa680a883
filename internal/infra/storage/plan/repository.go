package plan

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/psqlbuilder"
	"github.com/consultly/booking-service/pkg/txmanager"
)

// Repository репозиторий для работы с планами консультаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория планов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый план
func (r *Repository) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("plans").
		Columns("owner_id", "name", "price", "duration_minutes", "features").
		Values(p.OwnerID, p.Name, p.Price, p.DurationMinutes, pq.Array(p.Features)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает план по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "price", "duration_minutes", "features", "created_at", "updated_at",
	).
		From("plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan plan: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListByOwner получает все планы консультанта
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Plan, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "price", "duration_minutes", "features", "created_at", "updated_at",
	).
		From("plans").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return plans, nil
}

// Update обновляет план
func (r *Repository) Update(ctx context.Context, p *domain.Plan) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("plans").
		Set("name", p.Name).
		Set("price", p.Price).
		Set("duration_minutes", p.DurationMinutes).
		Set("features", pq.Array(p.Features)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID, "owner_id": p.OwnerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlanNotFound
	}

	return nil
}

// Delete удаляет план
func (r *Repository) Delete(ctx context.Context, id int64, ownerID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("plans").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
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
		return ErrPlanNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var p domain.Plan
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Price,
		&p.DurationMinutes,
		pq.Array(&p.Features),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
