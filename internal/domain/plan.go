package domain

import "time"

// Plan represents a consultation plan offered by a consultant
type Plan struct {
	ID              int64
	OwnerID         int64 // консультант, которому принадлежит план
	Name            string
	Price           float64
	DurationMinutes int
	Features        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
