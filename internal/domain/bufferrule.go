package domain

import "time"

// BufferRule associates a plan with a shift and the minimum idle gap
// between consecutive generated slots
// Если для одного плана существует несколько правил, авторитетным
// считается первое по id
type BufferRule struct {
	ID            int64
	PlanID        int64
	ShiftID       int64
	BufferMinutes int // >= 0
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
