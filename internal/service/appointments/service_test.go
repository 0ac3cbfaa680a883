package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	apptRepo "github.com/consultly/booking-service/internal/infra/storage/appointment"
	"github.com/consultly/booking-service/internal/service/appointments/models"
)

type fakeApptRepo struct {
	appointments map[int64]*domain.Appointment
}

func newFakeApptRepo(appts ...*domain.Appointment) *fakeApptRepo {
	repo := &fakeApptRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (r *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *fakeApptRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.AdminID != filter.AdminID {
			continue
		}
		if filter.Date != nil && !a.AppointmentDate.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeReleased && !a.Status.Blocks() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeApptRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := r.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	a.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, status domain.AppointmentStatus, slot string) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		AdminID:         1,
		FirstName:       "Anna",
		LastName:        "Petrova",
		AppointmentDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: slot,
		Status:          status,
	}
}

func TestService_GetBookedSlots_OnlyActiveAppointmentsBlock(t *testing.T) {
	repo := newFakeApptRepo(
		testAppointment(1, domain.StatusScheduled, "9:00 AM - 9:30 AM"),
		testAppointment(2, domain.StatusCancelled, "10:00 AM - 10:30 AM"),
		testAppointment(3, domain.StatusRescheduled, "11:00 AM - 11:30 AM"),
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetBookedSlots(context.Background(), 1, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.ElementsMatch(t, []models.BookedSlot{
		{StartTime: "9:00 AM", EndTime: "9:30 AM", Status: "Scheduled"},
		{StartTime: "11:00 AM", EndTime: "11:30 AM", Status: "Rescheduled"},
	}, resp.BookedSlots)
	assert.Equal(t, "2026-09-14", resp.Date)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeApptRepo(), nopLogger{})
	badStatus := "NoSuchStatus"

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		AdminID: 1,
		Status:  &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_NumericStatusCode(t *testing.T) {
	repo := newFakeApptRepo(
		testAppointment(1, domain.StatusScheduled, "9:00 AM - 9:30 AM"),
		testAppointment(2, domain.StatusCompleted, "10:00 AM - 10:30 AM"),
	)
	svc := NewService(repo, nopLogger{})
	code := "1" // Completed

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		AdminID: 1,
		Status:  &code,
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Completed", resp.Appointments[0].Status)
}

func TestService_UpdateStatus_RejectsCancellation(t *testing.T) {
	repo := newFakeApptRepo(testAppointment(1, domain.StatusScheduled, "9:00 AM - 9:30 AM"))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		AdminID: 1,
		Status:  "Cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_AccessDenied(t *testing.T) {
	repo := newFakeApptRepo(testAppointment(1, domain.StatusScheduled, "9:00 AM - 9:30 AM"))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		AdminID: 99,
		Status:  "Completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel(t *testing.T) {
	appt := testAppointment(1, domain.StatusScheduled, "9:00 AM - 9:30 AM")
	repo := newFakeApptRepo(appt)
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		AdminID:            1,
		CancellationReason: "клиент попросил перенос",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, appt.Status)
	require.NotNil(t, appt.CancellationReason)
	assert.Equal(t, "клиент попросил перенос", *appt.CancellationReason)
}

func TestService_Cancel_AlreadyCompleted(t *testing.T) {
	repo := newFakeApptRepo(testAppointment(1, domain.StatusCompleted, "9:00 AM - 9:30 AM"))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		AdminID:            1,
		CancellationReason: "поздно",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newFakeApptRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{AdminID: 1})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
