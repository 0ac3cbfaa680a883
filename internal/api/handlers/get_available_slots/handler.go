package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/domain"
	getAvailableSlots "github.com/consultly/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidPlanID  = "некорректный идентификатор плана"
	msgInvalidAdminID = "некорректный идентификатор консультанта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPlanNotFound   = "план не найден"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/plans/{planId}/available-slots?adminId=&date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil || planID <= 0 {
		h.logger.Warn("GET /plans/{planId}/available-slots - Invalid plan id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	adminID, err := strconv.ParseInt(r.URL.Query().Get("adminId"), 10, 64)
	if err != nil || adminID <= 0 {
		h.logger.Warn("GET /plans/{planId}/available-slots - Invalid admin id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /plans/{planId}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		AdminID: adminID,
		PlanID:  planID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPlanNotFound):
			h.logger.Warn("GET /plans/{planId}/available-slots - Plan not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /plans/{planId}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /plans/{planId}/available-slots - Failed: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /plans/{planId}/available-slots - %d slots: plan_id=%d, date=%s",
		len(result.Slots), planID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
