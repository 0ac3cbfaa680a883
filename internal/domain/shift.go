package domain

import (
	"time"

	"github.com/consultly/booking-service/pkg/timeutil"
)

// Shift represents a consultant's recurring daily working window
// If EndTime is not after StartTime, the window spans into the next
// calendar day (overnight shift)
type Shift struct {
	ID        int64
	OwnerID   int64 // консультант, которому принадлежит смена
	Name      string
	StartTime timeutil.TimeOfDay
	EndTime   timeutil.TimeOfDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOvernight returns true if the shift crosses midnight
func (s *Shift) IsOvernight() bool {
	return !s.StartTime.Before(s.EndTime)
}
