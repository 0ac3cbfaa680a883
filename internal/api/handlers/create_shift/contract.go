package create_shift

import (
	"context"

	"github.com/consultly/booking-service/internal/service/shifts/models"
)

type ShiftsService interface {
	Create(ctx context.Context, req *models.CreateShiftRequest) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
