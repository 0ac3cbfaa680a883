package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	apptRepo "github.com/consultly/booking-service/internal/infra/storage/appointment"
	"github.com/consultly/booking-service/internal/scheduling"
	"github.com/consultly/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// List получает записи консультанта с фильтрацией по дате и статусу
// По умолчанию отменённые и завершённые записи не включаются
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for admin=%d", req.AdminID)

	filter, ok := req.ToDomainFilter()
	if !ok {
		s.logger.Warn("List: invalid status=%s for admin=%d", *req.Status, req.AdminID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for admin=%d", len(appointments), req.AdminID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBookedSlots получает занятые слоты консультанта на дату
// Возвращаются только слоты записей, которые всё ещё занимают своё время
func (s *Service) GetBookedSlots(ctx context.Context, adminID int64, date time.Time) (*models.BookedSlotsResponse, error) {
	s.logger.Info("GetBookedSlots: fetching booked slots for admin=%d, date=%s", adminID, date.Format(domain.DateFormat))

	appointments, err := s.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		AdminID: adminID,
		Date:    &date,
	})
	if err != nil {
		s.logger.Error("GetBookedSlots: repository error for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: GetBookedSlots - repository error: %v", ErrInternal, err)
	}

	slots := make([]models.BookedSlot, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		startTime, endTime, ok := scheduling.SplitSlotLabel(appt.AppointmentTime)
		if !ok {
			// Запись с нераспарсиваемым label не должна ронять выборку
			s.logger.Warn("GetBookedSlots: appointment id=%d has malformed slot label %q", appt.ID, appt.AppointmentTime)
			continue
		}

		slots = append(slots, models.BookedSlot{
			StartTime: startTime,
			EndTime:   endTime,
			Status:    string(appt.Status),
		})
	}

	s.logger.Info("GetBookedSlots: %d booked slots for admin=%d on %s", len(slots), adminID, date.Format(domain.DateFormat))
	return &models.BookedSlotsResponse{
		Date:        date.Format(domain.DateFormat),
		BookedSlots: slots,
	}, nil
}

// UpdateStatus обновляет статус записи
// Доступно только владельцу записи
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by admin=%d",
		appointmentID, req.Status, req.AdminID)

	appt, err := s.getOwned(ctx, appointmentID, req.AdminID, "UpdateStatus")
	if err != nil {
		return err
	}

	newStatus, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	// Отмена идёт через Cancel - там фиксируются причина и время
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested via status update for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: use cancel endpoint to cancel an appointment", ErrInvalidInput)
	}

	if err := s.apptRepo.UpdateStatus(ctx, appt.ID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Cancel отменяет запись с указанием причины
// Доступно только владельцу записи
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by admin=%d", appointmentID, req.AdminID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.getOwned(ctx, appointmentID, req.AdminID, "Cancel")
	if err != nil {
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.apptRepo.Cancel(ctx, appt.ID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// getOwned получает запись и проверяет, что она принадлежит консультанту
func (s *Service) getOwned(ctx context.Context, appointmentID, adminID int64, op string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, appointmentID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if appt.AdminID != adminID {
		s.logger.Warn("%s: access denied for admin=%d to appointment id=%d", op, adminID, appointmentID)
		return nil, ErrAccessDenied
	}

	return appt, nil
}
