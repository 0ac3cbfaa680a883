package update_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	plansService "github.com/consultly/booking-service/internal/service/plans"
	"github.com/consultly/booking-service/internal/service/plans/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPlan        = "некорректный идентификатор плана"
	msgPlanNotFound       = "план не найден"
	msgAccessDenied       = "доступ к чужому плану запрещён"
	msgInvalidInput       = "некорректные данные плана"
	msgUnauthorized       = "не удалось определить пользователя"
)

// UpdatePlanRequest HTTP request model
type UpdatePlanRequest struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	Features        []string `json:"features,omitempty"`
}

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

// Handle PUT /api/v1/admin/plans/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("PUT /admin/plans/{planId} - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil || planID <= 0 {
		h.logger.Warn("PUT /admin/plans/{planId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlan)
		return
	}

	var req UpdatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/plans/{planId} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), planID, &models.UpdatePlanRequest{
		AdminID:         adminID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Features:        req.Features,
	})
	if err != nil {
		switch {
		case errors.Is(err, plansService.ErrPlanNotFound):
			h.logger.Warn("PUT /admin/plans/{planId} - Not found: id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, plansService.ErrAccessDenied):
			h.logger.Warn("PUT /admin/plans/{planId} - Access denied: admin_id=%d, id=%d", adminID, planID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, plansService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/plans/{planId} - Invalid input: id=%d, error=%v", planID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/plans/{planId} - Failed: id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/plans/{planId} - Updated: id=%d, admin_id=%d", planID, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
