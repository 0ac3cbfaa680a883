package create_plan

import (
	"errors"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	plansService "github.com/consultly/booking-service/internal/service/plans"
	"github.com/consultly/booking-service/internal/service/plans/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные плана"
	msgUnauthorized       = "не удалось определить пользователя"
)

// CreatePlanRequest HTTP request model
type CreatePlanRequest struct {
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

// Handle POST /api/v1/admin/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("POST /admin/plans - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/plans - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreatePlanRequest{
		AdminID:         adminID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Features:        req.Features,
	})
	if err != nil {
		switch {
		case errors.Is(err, plansService.ErrInvalidInput):
			h.logger.Warn("POST /admin/plans - Invalid input: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/plans - Failed: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/plans - Created: id=%d, admin_id=%d", result.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
