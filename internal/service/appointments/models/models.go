package models

import (
	"time"

	"github.com/consultly/booking-service/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение записей консультанта
type ListAppointmentsRequest struct {
	AdminID         int64      `json:"adminId"`
	Date            *time.Time `json:"date,omitempty"`            // Конкретная дата (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeReleased bool       `json:"includeReleased,omitempty"` // Включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, bool) {
	filter := domain.AppointmentsFilter{
		AdminID:         r.AdminID,
		Date:            r.Date,
		IncludeReleased: r.IncludeReleased,
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, false
		}
		filter.Status = &status
	}

	return filter, true
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	AdminID int64  `json:"adminId"`
	Status  string `json:"status"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	AdminID            int64  `json:"adminId"`
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PublicID        string  `json:"publicId"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	Details         *string `json:"details,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-14"
	AppointmentTime string  `json:"appointmentTime"` // "9:00 AM - 9:30 AM"
	PlanName        string  `json:"planName"`
	Amount          float64 `json:"amount"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// BookedSlot занятый интервал в проволочной форме
type BookedSlot struct {
	StartTime string `json:"startTime"` // "9:00 AM"
	EndTime   string `json:"endTime"`   // "9:30 AM"
	Status    string `json:"status"`
}

// BookedSlotsResponse ответ со списком занятых слотов на дату
type BookedSlotsResponse struct {
	Date        string       `json:"date"`
	BookedSlots []BookedSlot `json:"bookedSlots"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		PublicID:        a.PublicID.String(),
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		Email:           a.Email,
		PhoneNumber:     a.PhoneNumber,
		Details:         a.Details,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: a.AppointmentTime,
		PlanName:        a.PlanName,
		Amount:          a.Amount,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		CancellationReason: a.CancellationReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		result.Appointments = append(result.Appointments, *FromDomainAppointment(a))
	}
	return result
}
