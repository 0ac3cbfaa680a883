package cancel_appointment

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
	msgCannotCancel        = "запись нельзя отменить в текущем статусе"
	msgInvalidInput        = "некорректные данные отмены"
	msgUnauthorized        = "не удалось определить пользователя"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
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

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointment)
		return
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), appointmentID, &models.CancelAppointmentRequest{
		AdminID:            adminID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Access denied: admin_id=%d, id=%d",
				adminID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Cannot cancel: id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{appointmentId}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /admin/appointments/{appointmentId}/cancel - Failed: id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{appointmentId}/cancel - Cancelled: id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
