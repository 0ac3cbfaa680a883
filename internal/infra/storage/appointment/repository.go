package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/psqlbuilder"
	"github.com/consultly/booking-service/pkg/txmanager"
)

// Метка слота хранится текстом ("9:00 AM - 9:30 AM"), лексикографический
// порядок ставит "10:00 AM" раньше "9:00 AM". Для хронологической сортировки
// разбирается начало окна
const appointmentTimeOrder = "to_timestamp(split_part(appointment_time, ' - ', 1), 'HH12:MI AM')"

var appointmentColumns = []string{
	"id",
	"public_id",
	"admin_id",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"details",
	"appointment_date",
	"appointment_time",
	"plan_name",
	"amount",
	"duration_minutes",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"public_id",
			"admin_id",
			"first_name",
			"last_name",
			"email",
			"phone_number",
			"details",
			"appointment_date",
			"appointment_time",
			"plan_name",
			"amount",
			"duration_minutes",
			"status",
		).
		Values(
			appt.PublicID,
			appt.AdminID,
			appt.FirstName,
			appt.LastName,
			appt.Email,
			appt.PhoneNumber,
			appt.Details,
			appt.AppointmentDate,
			appt.AppointmentTime,
			appt.PlanName,
			appt.Amount,
			appt.DurationMinutes,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter получает записи консультанта с фильтрацией по дате и статусу
// По умолчанию возвращаются только записи, занимающие слот; IncludeReleased
// добавляет отменённые и завершённые
//
// Если вызов выполняется внутри транзакции и задана конкретная дата,
// выборка блокируется FOR UPDATE - это авторитетная проверка занятости
// слота при создании записи
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"admin_id": filter.AdminID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeReleased {
		released := make([]string, len(domain.ReleasedStatuses))
		for i, s := range domain.ReleasedStatuses {
			released[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": released})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy(appointmentTimeOrder + " ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC", appointmentTimeOrder+" DESC")
	}

	if txmanager.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PublicID,
		&appt.AdminID,
		&appt.FirstName,
		&appt.LastName,
		&appt.Email,
		&appt.PhoneNumber,
		&appt.Details,
		&appt.AppointmentDate,
		&appt.AppointmentTime,
		&appt.PlanName,
		&appt.Amount,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
