package get_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/domain"
	appointmentsService "github.com/consultly/booking-service/internal/service/appointments"
	"github.com/consultly/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus  = "некорректный статус записи"
	msgUnauthorized   = "не удалось определить пользователя"
)

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

// Handle GET /api/v1/admin/appointments?date=&status=&includeReleased=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("GET /admin/appointments - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	req := &models.ListAppointmentsRequest{
		AdminID:         adminID,
		IncludeReleased: r.URL.Query().Get("includeReleased") == "true",
	}

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		req.Status = &rawStatus
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid status: admin_id=%d", adminID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/appointments - Failed: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - %d appointments: admin_id=%d", len(result.Appointments), adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
