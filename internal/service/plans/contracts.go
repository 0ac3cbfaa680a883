package plans

import (
	"context"

	"github.com/consultly/booking-service/internal/domain"
)

// PlanRepository интерфейс репозитория планов
type PlanRepository interface {
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id int64, ownerID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
