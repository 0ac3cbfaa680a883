package domain

import "time"

// Slot represents a candidate appointment interval anchored to a concrete date.
// Never persisted, recomputed on every request.
//
// Label is the canonical rendering "<start 12h> - <end 12h>" and serves as the
// slot identity: two slots are the same slot iff their labels are byte-equal.
// The label a customer selects comes back verbatim as Appointment.AppointmentTime
type Slot struct {
	Start time.Time
	End   time.Time
	Label string
}

// AnnotatedSlot a slot together with its availability on the requested date
type AnnotatedSlot struct {
	Slot
	IsBooked bool
}
