package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	appointmentsService "github.com/consultly/booking-service/internal/service/appointments"
	"github.com/consultly/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidAppointment  = "некорректный идентификатор записи"
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "доступ к чужой записи запрещён"
	msgInvalidStatus       = "некорректный статус записи"
	msgUseCancelEndpoint   = "для отмены записи используйте отдельный запрос отмены"
	msgUnauthorized        = "не удалось определить пользователя"
)

// UpdateStatusRequest HTTP request model
// Статус принимается именем в любом регистре или числовым кодом 0-4
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointment)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), appointmentID, &models.UpdateStatusRequest{
		AdminID: adminID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Access denied: admin_id=%d, id=%d",
				adminID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Invalid status %q: id=%d",
				req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/status - Cancellation via status: id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgUseCancelEndpoint)

		default:
			h.logger.Error("PATCH /admin/appointments/{appointmentId}/status - Failed: id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{appointmentId}/status - Updated: id=%d, status=%s",
		appointmentID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
