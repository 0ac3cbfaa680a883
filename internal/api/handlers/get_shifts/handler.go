package get_shifts

import (
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
)

const msgUnauthorized = "не удалось определить пользователя"

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("GET /admin/shifts - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), adminID)
	if err != nil {
		h.logger.Error("GET /admin/shifts - Failed: admin_id=%d, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/shifts - %d shifts: admin_id=%d", len(result.Shifts), adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
