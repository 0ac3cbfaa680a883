package shift

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/psqlbuilder"
	"github.com/consultly/booking-service/pkg/txmanager"
)

// Repository репозиторий для работы со сменами консультантов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую смену
func (r *Repository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns("owner_id", "name", "start_time", "end_time").
		Values(s.OwnerID, s.Name, s.StartTime, s.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает смену по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "start_time", "end_time", "created_at", "updated_at",
	).
		From("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Shift
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.StartTime, &s.EndTime, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ListByOwner получает все смены консультанта, упорядоченные по времени начала
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Shift, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "owner_id", "name", "start_time", "end_time", "created_at", "updated_at",
	).
		From("shifts").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		var s domain.Shift
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.StartTime, &s.EndTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		shifts = append(shifts, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// Update обновляет смену
func (r *Repository) Update(ctx context.Context, s *domain.Shift) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shifts").
		Set("name", s.Name).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "owner_id": s.OwnerID}).
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
		return ErrShiftNotFound
	}

	return nil
}

// Delete удаляет смену
// Ссылочная целостность с buffer rules проверяется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, id int64, ownerID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
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
		return ErrShiftNotFound
	}

	return nil
}
