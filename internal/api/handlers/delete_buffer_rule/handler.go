package delete_buffer_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	bufferRulesService "github.com/consultly/booking-service/internal/service/bufferrules"
)

const (
	msgInvalidRule  = "некорректный идентификатор правила буфера"
	msgRuleNotFound = "правило буфера не найдено"
	msgUnauthorized = "не удалось определить пользователя"
)

type Handler struct {
	service BufferRulesService
	logger  Logger
}

func NewHandler(service BufferRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/plan-shift-buffer-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("DELETE /admin/plan-shift-buffer-rules/{ruleId} - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	ruleID, err := strconv.ParseInt(mux.Vars(r)["ruleId"], 10, 64)
	if err != nil || ruleID <= 0 {
		h.logger.Warn("DELETE /admin/plan-shift-buffer-rules/{ruleId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRule)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID, adminID); err != nil {
		switch {
		case errors.Is(err, bufferRulesService.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/plan-shift-buffer-rules/{ruleId} - Not found: id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /admin/plan-shift-buffer-rules/{ruleId} - Failed: id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/plan-shift-buffer-rules/{ruleId} - Deleted: id=%d, admin_id=%d", ruleID, adminID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
