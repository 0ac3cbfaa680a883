package create_appointment

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	AdminID         int64     // ID консультанта
	PlanID          int64     // ID плана консультации
	Date            time.Time // Дата записи (без времени)
	SlotLabel       string    // Выбранный слот, например "9:00 AM - 9:30 AM"
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Details         *string // Дополнительные пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     `json:"id"`
	PublicID        string    `json:"publicId"`
	AppointmentDate string    `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime string    `json:"appointmentTime"` // "9:00 AM - 9:30 AM"
	PlanName        string    `json:"planName"`
	Amount          float64   `json:"amount"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// toResponse конвертирует созданную запись в ответ
func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		PublicID:        appt.PublicID.String(),
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: appt.AppointmentTime,
		PlanName:        appt.PlanName,
		Amount:          appt.Amount,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		CreatedAt:       appt.CreatedAt,
	}
}
