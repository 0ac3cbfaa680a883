package delete_shift

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/api/middleware"
	shiftsService "github.com/consultly/booking-service/internal/service/shifts"
)

const (
	msgInvalidShift  = "некорректный идентификатор смены"
	msgShiftNotFound = "смена не найдена"
	msgAccessDenied  = "доступ к чужой смене запрещён"
	msgShiftInUse    = "смена используется правилом буфера - сначала удалите правило"
	msgUnauthorized  = "не удалось определить пользователя"
)

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

// Handle DELETE /api/v1/admin/shifts/{shiftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.EffectiveAdminID(r)
	if !ok {
		h.logger.Warn("DELETE /admin/shifts/{shiftId} - No user in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	shiftID, err := strconv.ParseInt(mux.Vars(r)["shiftId"], 10, 64)
	if err != nil || shiftID <= 0 {
		h.logger.Warn("DELETE /admin/shifts/{shiftId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShift)
		return
	}

	if err := h.service.Delete(r.Context(), shiftID, adminID); err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("DELETE /admin/shifts/{shiftId} - Not found: id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		case errors.Is(err, shiftsService.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/shifts/{shiftId} - Access denied: admin_id=%d, id=%d", adminID, shiftID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, shiftsService.ErrShiftInUse):
			h.logger.Warn("DELETE /admin/shifts/{shiftId} - In use by buffer rule: id=%d", shiftID)
			handlers.RespondError(w, http.StatusConflict, msgShiftInUse)

		default:
			h.logger.Error("DELETE /admin/shifts/{shiftId} - Failed: id=%d, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/shifts/{shiftId} - Deleted: id=%d, admin_id=%d", shiftID, adminID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
