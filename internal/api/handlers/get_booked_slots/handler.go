package get_booked_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/consultly/booking-service/internal/api/handlers"
	"github.com/consultly/booking-service/internal/domain"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidAdminID = "некорректный идентификатор консультанта"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/booked-slots/{date}?adminId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /appointments/booked-slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	adminID, err := strconv.ParseInt(r.URL.Query().Get("adminId"), 10, 64)
	if err != nil || adminID <= 0 {
		h.logger.Warn("GET /appointments/booked-slots/{date} - Invalid admin id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	result, err := h.service.GetBookedSlots(r.Context(), adminID, date)
	if err != nil {
		h.logger.Error("GET /appointments/booked-slots/{date} - Failed: admin_id=%d, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/booked-slots/{date} - %d booked slots: admin_id=%d, date=%s",
		len(result.BookedSlots), adminID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
