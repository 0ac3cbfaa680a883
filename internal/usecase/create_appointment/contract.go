package create_appointment

import (
	"context"

	"github.com/consultly/booking-service/internal/domain"
)

// PlanRepository интерфейс репозитория планов
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Shift, error)
}

// BufferRuleRepository интерфейс репозитория правил буферов
type BufferRuleRepository interface {
	ListByPlan(ctx context.Context, planID int64) ([]*domain.BufferRule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
