package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/consultly/booking-service/internal/domain"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	"github.com/consultly/booking-service/internal/scheduling"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	planRepo  PlanRepository
	shiftRepo ShiftRepository
	ruleRepo  BufferRuleRepository
	apptRepo  AppointmentRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	planRepo PlanRepository,
	shiftRepo ShiftRepository,
	ruleRepo BufferRuleRepository,
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		planRepo:  planRepo,
		shiftRepo: shiftRepo,
		ruleRepo:  ruleRepo,
		apptRepo:  apptRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка слота выполняется в сериализуемой транзакции: расписание плана
// регенерируется на стороне сервера, выбранный слот ищется по label, занятость
// проверяется по записям даты под блокировкой. Только такая авторитетная
// проверка на стороне записи исключает гонку двух одновременных бронирований
// одного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: admin=%d, plan=%d, date=%s, slot=%q",
		req.AdminID, req.PlanID, req.Date.Format(domain.DateFormat), req.SlotLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем план и проверяем принадлежность консультанту
	plan, err := uc.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			uc.logger.Warn("CreateAppointment: plan id=%d not found", req.PlanID)
			return nil, ErrPlanNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get plan id=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
	}
	if plan.OwnerID != req.AdminID {
		uc.logger.Warn("CreateAppointment: plan id=%d does not belong to admin=%d", req.PlanID, req.AdminID)
		return nil, ErrPlanNotFound
	}

	// 3. Резолвим смену и буфер - расписание регенерируется на сервере,
	// клиентскому списку слотов не доверяем
	rules, err := uc.ruleRepo.ListByPlan(ctx, req.PlanID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get buffer rules for plan=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: failed to get buffer rules: %v", ErrInternal, err)
	}

	shifts, err := uc.shiftRepo.ListByOwner(ctx, req.AdminID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get shifts for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
	}

	shift, bufferMinutes := scheduling.ResolveBufferAndShift(req.PlanID, rules, shifts)
	if shift == nil {
		uc.logger.Warn("CreateAppointment: no shift configured for plan=%d", req.PlanID)
		return nil, ErrSlotNotFound
	}

	windowStart, windowEnd := scheduling.ShiftWindowOn(shift, req.Date)
	slots := scheduling.GenerateSlots(windowStart, windowEnd, plan.DurationMinutes, bufferMinutes)

	// 4. Ищем выбранный слот по label
	var chosen *domain.Slot
	label := strings.TrimSpace(req.SlotLabel)
	for i := range slots {
		if slots[i].Label == label {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil {
		uc.logger.Warn("CreateAppointment: slot %q not found for plan=%d, date=%s",
			label, req.PlanID, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotFound
	}

	// 5. Проверяем занятость и создаем запись в одной сериализуемой транзакции
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointments, err := uc.apptRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			AdminID: req.AdminID,
			Date:    &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		busy, skipped := scheduling.NormalizeBlocking(toReservations(appointments), req.Date)
		for _, skipErr := range skipped {
			uc.logger.Warn("CreateAppointment: skipping malformed appointment: %v", skipErr)
		}

		for _, b := range busy {
			if b.Start.Before(chosen.End) && chosen.Start.Before(b.End) {
				return ErrSlotTaken
			}
		}

		created, err = uc.apptRepo.Create(txCtx, &domain.Appointment{
			PublicID:        uuid.New(),
			AdminID:         req.AdminID,
			FirstName:       strings.TrimSpace(req.FirstName),
			LastName:        strings.TrimSpace(req.LastName),
			Email:           strings.TrimSpace(req.Email),
			PhoneNumber:     normalizePhoneNumber(req.PhoneNumber),
			Details:         req.Details,
			AppointmentDate: req.Date,
			AppointmentTime: chosen.Label,
			PlanName:        plan.Name,
			Amount:          plan.Price,
			DurationMinutes: plan.DurationMinutes,
			Status:          domain.StatusScheduled,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot %q already booked for admin=%d, date=%s",
				label, req.AdminID, req.Date.Format(domain.DateFormat))
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d public_id=%s",
		created.ID, created.PublicID)
	return toResponse(created), nil
}

// toReservations конвертирует записи в форму, пригодную для нормализации
func toReservations(appointments []*domain.Appointment) []scheduling.Reservation {
	reservations := make([]scheduling.Reservation, 0, len(appointments))
	for _, appt := range appointments {
		startTime, endTime, ok := scheduling.SplitSlotLabel(appt.AppointmentTime)
		if !ok {
			startTime = appt.AppointmentTime
		}
		reservations = append(reservations, scheduling.Reservation{
			StartTime: startTime,
			EndTime:   endTime,
			Status:    string(appt.Status),
		})
	}
	return reservations
}
