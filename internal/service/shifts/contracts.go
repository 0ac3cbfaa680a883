package shifts

import (
	"context"

	"github.com/consultly/booking-service/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Shift, error)
	Update(ctx context.Context, s *domain.Shift) error
	Delete(ctx context.Context, id int64, ownerID int64) error
}

// BufferRuleRepository интерфейс репозитория правил буферов
// Нужен для guard-проверки при удалении смены
type BufferRuleRepository interface {
	ExistsByShift(ctx context.Context, shiftID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
