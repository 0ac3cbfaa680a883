package get_buffer_rules

import (
	"net/http"
	"strconv"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

const (
	msgInvalidPlanFilter = "некорректный параметр planId"
	msgUnauthorized      = "не удалось определить пользователя"
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

// Handle GET /api/v1/admin/plan-shift-buffer-rules?planId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("GET /admin/plan-shift-buffer-rules - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var planID int64
	if raw := r.URL.Query().Get("planId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /admin/plan-shift-buffer-rules - Invalid planId %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPlanFilter)
			return
		}
		planID = id
	}

	result, err := h.service.List(r.Context(), adminID)
	if err != nil {
		h.logger.Error("GET /admin/plan-shift-buffer-rules - Failed: admin_id=%d, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	if planID > 0 {
		result = filterByPlan(result, planID)
	}

	h.logger.Info("GET /admin/plan-shift-buffer-rules - %d rules: admin_id=%d", len(result.Rules), adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func filterByPlan(list *models.BufferRuleListResponse, planID int64) *models.BufferRuleListResponse {
	filtered := &models.BufferRuleListResponse{Rules: make([]models.BufferRuleResponse, 0, len(list.Rules))}
	for _, rule := range list.Rules {
		if rule.PlanID == planID {
			filtered.Rules = append(filtered.Rules, rule)
		}
	}
	return filtered
}
