package bufferrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/psqlbuilder"
	"github.com/consultly/booking-service/pkg/txmanager"
)

// Repository репозиторий для работы с правилами буферов между слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил буферов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByPlan получает правила для плана
// Порядок по id гарантирует детерминированный выбор первого правила
func (r *Repository) ListByPlan(ctx context.Context, planID int64) ([]*domain.BufferRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "plan_id", "shift_id", "buffer_minutes", "created_at", "updated_at",
	).
		From("buffer_rules").
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPlan - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRules(ctx, executor, query, args, "ListByPlan")
}

// ListByOwner получает все правила консультанта (через принадлежность плана)
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BufferRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"br.id", "br.plan_id", "br.shift_id", "br.buffer_minutes", "br.created_at", "br.updated_at",
	).
		From("buffer_rules br").
		Join("plans p ON p.id = br.plan_id").
		Where(squirrel.Eq{"p.owner_id": ownerID}).
		OrderBy("br.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRules(ctx, executor, query, args, "ListByOwner")
}

// Upsert создает правило или обновляет буфер существующей пары план-смена
func (r *Repository) Upsert(ctx context.Context, rule *domain.BufferRule) (*domain.BufferRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("buffer_rules").
		Columns("plan_id", "shift_id", "buffer_minutes").
		Values(rule.PlanID, rule.ShiftID, rule.BufferMinutes).
		Suffix(`ON CONFLICT (plan_id, shift_id)
			DO UPDATE SET buffer_minutes = EXCLUDED.buffer_minutes, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("buffer_rules").
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
		return ErrRuleNotFound
	}

	return nil
}

// ExistsByShift проверяет, ссылается ли хотя бы одно правило на смену
// Используется как guard при удалении смены
func (r *Repository) ExistsByShift(ctx context.Context, shiftID int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("buffer_rules").
		Where(squirrel.Eq{"shift_id": shiftID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByShift - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByShift - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) queryRules(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.BufferRule, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.BufferRule, 0)
	for rows.Next() {
		var rule domain.BufferRule
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&rule.ID, &rule.PlanID, &rule.ShiftID, &rule.BufferMinutes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rules, nil
}
