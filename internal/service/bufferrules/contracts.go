package bufferrules

import (
	"context"

	"github.com/consultly/booking-service/internal/domain"
)

// BufferRuleRepository интерфейс репозитория правил буферов
type BufferRuleRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.BufferRule, error)
	Upsert(ctx context.Context, rule *domain.BufferRule) (*domain.BufferRule, error)
	Delete(ctx context.Context, id int64) error
}

// PlanRepository интерфейс репозитория планов
// Нужен для проверки принадлежности плана консультанту
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}

// ShiftRepository интерфейс репозитория смен
// Нужен для проверки принадлежности смены консультанту
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
