package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPlanDurationMinutes      = 5
	MaxPlanDurationMinutes      = 480 // 8 hours
	MinBufferMinutes            = 0
	MaxBufferMinutes            = 240
	MaxDetailsLength            = 1000
	MaxCancellationReasonLength = 500
	PhoneNumberDigits           = 10
)

// BlockingStatuses статусы, при которых запись занимает свой слот
// Используется при выборке занятых слотов на дату
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusRescheduled,
	StatusPending,
}

// ReleasedStatuses статусы, при которых слот снова доступен
var ReleasedStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
