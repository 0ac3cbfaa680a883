package get_shifts

import (
	"context"

	"github.com/consultly/booking-service/internal/service/shifts/models"
)

type ShiftsService interface {
	List(ctx context.Context, adminID int64) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
