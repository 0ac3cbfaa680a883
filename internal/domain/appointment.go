package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of a customer appointment
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "Scheduled"
	StatusCompleted   AppointmentStatus = "Completed"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusRescheduled AppointmentStatus = "Rescheduled"
	StatusPending     AppointmentStatus = "Pending"
)

// statusByCode legacy-клиенты присылают статус числовым кодом
var statusByCode = map[int]AppointmentStatus{
	0: StatusScheduled,
	1: StatusCompleted,
	2: StatusCancelled,
	3: StatusRescheduled,
	4: StatusPending,
}

// ParseAppointmentStatus нормализует статус из внешнего представления:
// имя в любом регистре ("scheduled") или числовой код ("0".."4").
// Пустая строка и неизвестные значения возвращают ok=false
func ParseAppointmentStatus(raw string) (AppointmentStatus, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if code, err := strconv.Atoi(raw); err == nil {
		status, ok := statusByCode[code]
		return status, ok
	}

	for _, status := range []AppointmentStatus{
		StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled, StatusPending,
	} {
		if strings.EqualFold(raw, string(status)) {
			return status, true
		}
	}
	return "", false
}

// Blocks reports whether an appointment in this status occupies its time slot.
// Cancelled and Completed appointments release the slot; everything else,
// including an unknown or missing status, keeps it occupied
func (s AppointmentStatus) Blocks() bool {
	return s != StatusCancelled && s != StatusCompleted
}

// Appointment represents a customer booking against a consultant's plan
type Appointment struct {
	ID              int64
	PublicID        uuid.UUID // ссылка для клиента, отдаётся в письмах и ответах API
	AdminID         int64     // владелец-консультант
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Details         *string
	AppointmentDate time.Time
	AppointmentTime string // label выбранного слота, например "9:00 AM - 9:30 AM"
	PlanName        string
	Amount          float64
	DurationMinutes int
	Status          AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusRescheduled || a.Status == StatusPending
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status.Blocks()
}

// AppointmentsFilter фильтр для выборки записей консультанта
type AppointmentsFilter struct {
	AdminID         int64              // Обязательный параметр
	Date            *time.Time         // Конкретная дата (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeReleased bool               // Включать ли записи, освободившие слот (Cancelled, Completed)
}
