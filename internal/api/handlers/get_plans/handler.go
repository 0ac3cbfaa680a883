package get_plans

import (
	"net/http"
	"strconv"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
)

const (
	msgInvalidAdminID = "некорректный идентификатор консультанта"
	msgUnauthorized   = "не удалось определить пользователя"
)

type Handler struct {
	service PlansService
	logger  Logger
}

func NewHandler(service PlansService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/plans?adminId= (публичная витрина планов консультанта)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(r.URL.Query().Get("adminId"), 10, 64)
	if err != nil || adminID <= 0 {
		h.logger.Warn("GET /plans - Invalid admin id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	h.respondList(w, r, adminID, "GET /plans")
}

// HandleAdmin GET /api/v1/admin/plans (кабинет консультанта)
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("GET /admin/plans - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	h.respondList(w, r, adminID, "GET /admin/plans")
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, adminID int64, route string) {
	result, err := h.service.List(r.Context(), adminID)
	if err != nil {
		h.logger.Error("%s - Failed: admin_id=%d, error=%v", route, adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - %d plans: admin_id=%d", route, len(result.Plans), adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
