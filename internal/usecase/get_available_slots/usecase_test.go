package get_available_slots

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
	return NewUseCase(f, f, f, f, nopLogger{})
}

func TestExecute_GeneratesSlotsWithBuffer(t *testing.T) {
	uc := newUseCase(newFixture())

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)

	labels := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{
		"9:00 AM - 9:30 AM",
		"9:40 AM - 10:10 AM",
		"10:20 AM - 10:50 AM",
	}, labels)

	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "09:30", resp.Slots[0].EndTime)
	for _, s := range resp.Slots {
		assert.False(t, s.IsBooked)
	}
}

func TestExecute_AnnotatesBookedSlots(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{AdminID: 1, AppointmentDate: testDate, AppointmentTime: "9:40 AM - 10:10 AM", Status: domain.StatusScheduled},
	}
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.False(t, resp.Slots[0].IsBooked)
	assert.True(t, resp.Slots[1].IsBooked)
	assert.False(t, resp.Slots[2].IsBooked)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{AdminID: 1, AppointmentDate: testDate, AppointmentTime: "9:00 AM - 9:30 AM", Status: domain.StatusCancelled},
	}
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.Slots[0].IsBooked)
}

func TestExecute_MalformedAppointmentSkipped(t *testing.T) {
	f := newFixture()
	f.appointments = []*domain.Appointment{
		{AdminID: 1, AppointmentDate: testDate, AppointmentTime: "garbage", Status: domain.StatusScheduled},
		{AdminID: 1, AppointmentDate: testDate, AppointmentTime: "10:20 AM - 10:50 AM", Status: domain.StatusScheduled},
	}
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	// Битая запись не делает день ни полностью свободным, ни занятым
	assert.False(t, resp.Slots[0].IsBooked)
	assert.True(t, resp.Slots[2].IsBooked)
}

func TestExecute_NoBufferRule_EmptySlots(t *testing.T) {
	f := newFixture()
	f.rules = nil
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OvernightShift(t *testing.T) {
	f := newFixture()
	f.shifts = []*domain.Shift{
		{ID: 5, OwnerID: 1, Name: "Night", StartTime: timeutil.TimeOfDay{Hour: 23}, EndTime: timeutil.TimeOfDay{Hour: 1}},
	}
	f.rules = []*domain.BufferRule{{ID: 1, PlanID: 10, ShiftID: 5, BufferMinutes: 0}}
	uc := newUseCase(f)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "11:00 PM - 11:30 PM", resp.Slots[0].Label)
	assert.Equal(t, "12:30 AM - 1:00 AM", resp.Slots[3].Label)
}

func TestExecute_PlanNotOwned(t *testing.T) {
	uc := newUseCase(newFixture())

	_, err := uc.Execute(context.Background(), &Request{AdminID: 2, PlanID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newUseCase(newFixture())

	_, err := uc.Execute(context.Background(), &Request{AdminID: 1, PlanID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
