package cancel_appointment

import (
	"context"

	"github.com/consultly/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
