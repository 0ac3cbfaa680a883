package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	"github.com/consultly/booking-service/pkg/timeutil"
)

type fixture struct {
	plans        map[int64]*domain.Plan
	shifts       []*domain.Shift
	rules        []*domain.BufferRule
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fixture) GetByID(_ context.Context, id int64) (*domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, planRepo.ErrPlanNotFound
	}
	return p, nil
}

func (f *fixture) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Shift, error) {
	result := make([]*domain.Shift, 0)
	for _, s := range f.shifts {
		if s.OwnerID == ownerID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fixture) ListByPlan(_ context.Context, planID int64) ([]*domain.BufferRule, error) {
	result := make([]*domain.BufferRule, 0)
	for _, r := range f.rules {
		if r.PlanID == planID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fixture) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.AdminID != filter.AdminID {
			continue
		}
		if filter.Date != nil && !a.AppointmentDate.Equal(*filter.Date) {
			continue
		}
		if filter.Status == nil && !filter.IncludeReleased && !a.Status.Blocks() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fixture) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	f.appointments = append(f.appointments, appt)
	return appt, nil
}

// DoSerializable в тестах просто выполняет fn: конкурентность проверяется
// на уровне интеграции с БД
func (f *fixture) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	return &fixture{
		plans: map[int64]*domain.Plan{
			10: {ID: 10, OwnerID: 1, Name: "Standard", Price: 150, DurationMinutes: 30},
		},
		shifts: []*domain.Shift{
			{ID: 5, OwnerID: 1, Name: "Morning", StartTime: timeutil.TimeOfDay{Hour: 9}, EndTime: timeutil.TimeOfDay{Hour: 11}},
		},
		rules: []*domain.BufferRule{
			{ID: 1, PlanID: 10, ShiftID: 5, BufferMinutes: 10},
		},
	}
}

func newUseCase(f *fixture) *UseCase {
	return NewUseCase(f, f, f, f, f, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		AdminID:     1,
		PlanID:      10,
		Date:        testDate,
		SlotLabel:   "9:40 AM - 10:10 AM",
		FirstName:   "Anna",
		LastName:    "Petrova",
		Email:       "anna@example.com",
		PhoneNumber: "903-555-7788",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	f := newFixture()
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "9:40 AM - 10:10 AM", resp.AppointmentTime)
	assert.Equal(t, "2026-09-14", resp.AppointmentDate)
	assert.Equal(t, "Standard", resp.PlanName)
	assert.Equal(t, float64(150), resp.Amount)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "Scheduled", resp.Status)
	assert.NotEmpty(t, resp.PublicID)

	require.Len(t, f.appointments, 1)
	// Разделители из номера убраны
	assert.Equal(t, "9035557788", f.appointments[0].PhoneNumber)
}

func TestExecute_SlotNotInSchedule(t *testing.T) {
	uc := newUseCase(newFixture())

	req := validRequest()
	req.SlotLabel = "9:30 AM - 10:00 AM" // не совпадает с сеткой из-за буфера
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotTaken(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{ID: 1, AdminID: 1, AppointmentDate: testDate, AppointmentTime: "9:40 AM - 10:10 AM", Status: domain.StatusScheduled},
	}
	uc := newUseCase(f)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{ID: 1, AdminID: 1, AppointmentDate: testDate, AppointmentTime: "9:40 AM - 10:10 AM", Status: domain.StatusCancelled},
	}
	uc := newUseCase(f)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_UnknownStatusBlocksSlot(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{ID: 1, AdminID: 1, AppointmentDate: testDate, AppointmentTime: "9:40 AM - 10:10 AM", Status: "Mystery"},
	}
	uc := newUseCase(f)

	// Живая запись с неизвестным статусом консервативно занимает слот
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_NoShiftConfigured(t *testing.T) {
	f := newFixture()
	f.rules = nil
	uc := newUseCase(f)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_PlanNotOwned(t *testing.T) {
	uc := newUseCase(newFixture())

	req := validRequest()
	req.AdminID = 2
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(newFixture())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing first name", func(r *Request) { r.FirstName = "  " }},
		{"missing last name", func(r *Request) { r.LastName = "" }},
		{"invalid email", func(r *Request) { r.Email = "not-an-email" }},
		{"phone too short", func(r *Request) { r.PhoneNumber = "12345" }},
		{"phone with letters", func(r *Request) { r.PhoneNumber = "90355577ab" }},
		{"missing slot", func(r *Request) { r.SlotLabel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
