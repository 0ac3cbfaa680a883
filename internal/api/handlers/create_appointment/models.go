package create_appointment

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
	createAppointment "github.com/consultly/booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	AdminID         int64   `json:"adminId"`
	PlanID          int64   `json:"planId"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime string  `json:"appointmentTime"` // label слота, например "9:00 AM - 9:30 AM"
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	Details         *string `json:"details,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PublicID        string  `json:"publicId"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	PlanName        string  `json:"planName"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		AdminID:     r.AdminID,
		PlanID:      r.PlanID,
		Date:        date,
		SlotLabel:   r.AppointmentTime,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Details:     r.Details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PublicID:        resp.PublicID,
		AppointmentDate: resp.AppointmentDate,
		AppointmentTime: resp.AppointmentTime,
		PlanName:        resp.PlanName,
		Amount:          resp.Amount,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
