package delete_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	plansService "github.com/consultly/booking-service/internal/service/plans"
)

const (
	msgInvalidPlan  = "некорректный идентификатор плана"
	msgPlanNotFound = "план не найден"
	msgAccessDenied = "доступ к чужому плану запрещён"
	msgUnauthorized = "не удалось определить пользователя"
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

// Handle DELETE /api/v1/admin/plans/{planId}
// Правила буферов, привязанные к плану, удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("DELETE /admin/plans/{planId} - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil || planID <= 0 {
		h.logger.Warn("DELETE /admin/plans/{planId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlan)
		return
	}

	if err := h.service.Delete(r.Context(), planID, adminID); err != nil {
		switch {
		case errors.Is(err, plansService.ErrPlanNotFound):
			h.logger.Warn("DELETE /admin/plans/{planId} - Not found: id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, plansService.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/plans/{planId} - Access denied: admin_id=%d, id=%d", adminID, planID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /admin/plans/{planId} - Failed: id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/plans/{planId} - Deleted: id=%d, admin_id=%d", planID, adminID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
