package upsert_buffer_rule

import (
	"errors"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	bufferRulesService "github.com/consultly/booking-service/internal/service/bufferrules"
	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPlanNotFound       = "план не найден"
	msgShiftNotFound      = "смена не найдена"
	msgAccessDenied       = "план или смена принадлежит другому консультанту"
	msgInvalidInput       = "некорректные данные правила буфера"
	msgUnauthorized       = "не удалось определить пользователя"
)

// UpsertBufferRuleRequest HTTP request model
type UpsertBufferRuleRequest struct {
	PlanID        int64 `json:"planId"`
	ShiftID       int64 `json:"shiftId"`
	BufferMinutes int   `json:"bufferMinutes"`
}

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

// Handle PUT /api/v1/admin/plan-shift-buffer-rules
// Пара план-смена уникальна: повторный PUT обновляет буфер существующего правила
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("PUT /admin/plan-shift-buffer-rules - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpsertBufferRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/plan-shift-buffer-rules - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &models.UpsertBufferRuleRequest{
		AdminID:       adminID,
		PlanID:        req.PlanID,
		ShiftID:       req.ShiftID,
		BufferMinutes: req.BufferMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, bufferRulesService.ErrPlanNotFound):
			h.logger.Warn("PUT /admin/plan-shift-buffer-rules - Plan not found: plan_id=%d", req.PlanID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, bufferRulesService.ErrShiftNotFound):
			h.logger.Warn("PUT /admin/plan-shift-buffer-rules - Shift not found: shift_id=%d", req.ShiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, bufferRulesService.ErrAccessDenied):
			h.logger.Warn("PUT /admin/plan-shift-buffer-rules - Access denied: admin_id=%d, plan_id=%d, shift_id=%d",
				adminID, req.PlanID, req.ShiftID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bufferRulesService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/plan-shift-buffer-rules - Invalid input: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/plan-shift-buffer-rules - Failed: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/plan-shift-buffer-rules - Upserted: id=%d, plan_id=%d, shift_id=%d",
		result.ID, req.PlanID, req.ShiftID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
