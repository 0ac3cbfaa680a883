package create_shift

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/scheduling"
	shiftsService "github.com/consultly/booking-service/internal/service/shifts"
	"github.com/consultly/booking-service/internal/service/shifts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgShiftOverlap       = "смена пересекается с существующей сменой"
	msgInvalidInput       = "некорректные данные смены"
	msgUnauthorized       = "не удалось определить пользователя"
)

// CreateShiftRequest HTTP request model
type CreateShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"` // "09:00" или "9:00 AM"
	EndTime   string `json:"endTime"`
}

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

// Handle POST /api/v1/admin/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("POST /admin/shifts - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/shifts - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &models.CreateShiftRequest{
		AdminID:   adminID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftOverlap):
			h.logger.Warn("POST /admin/shifts - Overlap: admin_id=%d, error=%v", adminID, err)
			handlers.RespondError(w, http.StatusConflict, overlapMessage(err))

		case errors.Is(err, shiftsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/shifts - Invalid input: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/shifts - Failed: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/shifts - Created: id=%d, admin_id=%d", result.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// overlapMessage формирует сообщение с окном конфликтующей смены
func overlapMessage(err error) string {
	var overlapErr *scheduling.OverlapError
	if errors.As(err, &overlapErr) {
		return fmt.Sprintf("%s %q (%s - %s)", msgShiftOverlap,
			overlapErr.ConflictName, overlapErr.ConflictStart, overlapErr.ConflictEnd)
	}
	return msgShiftOverlap
}
