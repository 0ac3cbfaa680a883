package update_shift

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/scheduling"
	shiftsService "github.com/consultly/booking-service/internal/service/shifts"
	"github.com/consultly/booking-service/internal/service/shifts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidShift       = "некорректный идентификатор смены"
	msgShiftNotFound      = "смена не найдена"
	msgAccessDenied       = "доступ к чужой смене запрещён"
	msgShiftOverlap       = "смена пересекается с существующей сменой"
	msgInvalidInput       = "некорректные данные смены"
	msgUnauthorized       = "не удалось определить пользователя"
)

// UpdateShiftRequest HTTP request model
type UpdateShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
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

// Handle PUT /api/v1/admin/shifts/{shiftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("PUT /admin/shifts/{shiftId} - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	shiftID, err := strconv.ParseInt(mux.Vars(r)["shiftId"], 10, 64)
	if err != nil || shiftID <= 0 {
		h.logger.Warn("PUT /admin/shifts/{shiftId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShift)
		return
	}

	var req UpdateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shifts/{shiftId} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), shiftID, &models.UpdateShiftRequest{
		AdminID:   adminID,
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("PUT /admin/shifts/{shiftId} - Not found: id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, shiftsService.ErrAccessDenied):
			h.logger.Warn("PUT /admin/shifts/{shiftId} - Access denied: admin_id=%d, id=%d", adminID, shiftID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, shiftsService.ErrShiftOverlap):
			h.logger.Warn("PUT /admin/shifts/{shiftId} - Overlap: id=%d, error=%v", shiftID, err)
			handlers.RespondError(w, http.StatusConflict, overlapMessage(err))

		case errors.Is(err, shiftsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/shifts/{shiftId} - Invalid input: id=%d, error=%v", shiftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/shifts/{shiftId} - Failed: id=%d, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/shifts/{shiftId} - Updated: id=%d, admin_id=%d", shiftID, adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
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
