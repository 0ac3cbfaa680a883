package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/ptr"
	"github.com/consultly/booking-service/pkg/txmanager"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	appt := &domain.Appointment{
		PublicID:        uuid.New(),
		AdminID:         1,
		FirstName:       "Anna",
		LastName:        "Petrova",
		Email:           "anna@example.com",
		PhoneNumber:     "9035557788",
		AppointmentDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "9:00 AM - 9:30 AM",
		PlanName:        "Standard Consultation",
		Amount:          150,
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
	}

	created, err := repo.Create(context.Background(), appt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_WithoutDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	publicID := uuid.New()
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// details опциональны: nil должен уходить в БД как NULL
	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(
			publicID,
			int64(1),
			"Anna",
			"Petrova",
			"anna@example.com",
			"9035557788",
			nil,
			date,
			"9:00 AM - 9:30 AM",
			"Standard Consultation",
			float64(150),
			30,
			string(domain.StatusScheduled),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(43), now, now))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		PublicID:        publicID,
		AdminID:         1,
		FirstName:       "Anna",
		LastName:        "Petrova",
		Email:           "anna@example.com",
		PhoneNumber:     "9035557788",
		Details:         nil,
		AppointmentDate: date,
		AppointmentTime: "9:00 AM - 9:30 AM",
		PlanName:        "Standard Consultation",
		Amount:          150,
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(43), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentColumns))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_DefaultExcludesReleased(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Без явного статуса отменённые и завершённые записи отсекаются в SQL;
	// сортировка разбирает текстовую метку слота, а не сравнивает её как строку
	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE admin_id = \$1 AND appointment_date = \$2 AND status NOT IN \(\$3,\$4\) ORDER BY to_timestamp\(split_part\(appointment_time, ' - ', 1\), 'HH12:MI AM'\) ASC`).
		WithArgs(int64(1), date, string(domain.StatusCancelled), string(domain.StatusCompleted)).
		WillReturnRows(emptyAppointmentRows())

	_, err = repo.GetWithFilter(context.Background(), domain.AppointmentsFilter{
		AdminID: 1,
		Date:    &date,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_ExplicitStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE admin_id = \$1 AND status = \$2 ORDER BY appointment_date DESC`).
		WithArgs(int64(1), domain.StatusCancelled).
		WillReturnRows(emptyAppointmentRows())

	_, err = repo.GetWithFilter(context.Background(), domain.AppointmentsFilter{
		AdminID: 1,
		Status:  ptr.Ptr(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_LocksRowsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	manager := txmanager.NewTransactionManager(db)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM appointments .+ FOR UPDATE`).
		WillReturnRows(emptyAppointmentRows())
	mock.ExpectCommit()

	err = manager.Do(context.Background(), func(ctx context.Context) error {
		_, err := repo.GetWithFilter(ctx, domain.AppointmentsFilter{AdminID: 1, Date: &date})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), 77, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Cancel(context.Background(), 5, "клиент попросил перенос")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func emptyAppointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(appointmentColumns)
}
