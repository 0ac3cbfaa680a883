package create_appointment

import (
	"errors"
	"net/http"

	"github.com/consultly/booking-service/internal/api/handlers"
	createAppointment "github.com/consultly/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgPlanNotFound       = "план не найден"
	msgSlotNotFound       = "выбранный слот не существует в расписании"
	msgSlotTaken          = "выбранный слот уже занят"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date %q: %v", req.AppointmentDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: admin_id=%d, slot=%q", req.AdminID, req.AppointmentTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: admin_id=%d, slot=%q", req.AdminID, req.AppointmentTime)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createAppointment.ErrPlanNotFound):
			h.logger.Warn("POST /appointments - Plan not found: plan_id=%d", req.PlanID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: admin_id=%d, error=%v",
				req.AdminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, public_id=%s, slot=%q",
		result.ID, result.PublicID, result.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
