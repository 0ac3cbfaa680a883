package update_shift

import (
	"context"

	"github.com/consultly/booking-service/internal/service/shifts/models"
)

type ShiftsService interface {
	Update(ctx context.Context, shiftID int64, req *models.UpdateShiftRequest) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
