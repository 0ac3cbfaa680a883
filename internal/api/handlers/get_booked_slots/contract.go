package get_booked_slots

import (
	"context"
	"time"

	"github.com/consultly/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetBookedSlots(ctx context.Context, adminID int64, date time.Time) (*models.BookedSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
