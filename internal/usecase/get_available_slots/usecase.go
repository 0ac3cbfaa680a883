package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultly/booking-service/internal/domain"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	"github.com/consultly/booking-service/internal/scheduling"
	"github.com/consultly/booking-service/pkg/timeutil"
)

// UseCase use case для получения слотов плана на дату
type UseCase struct {
	planRepo  PlanRepository
	shiftRepo ShiftRepository
	ruleRepo  BufferRuleRepository
	apptRepo  AppointmentRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	planRepo PlanRepository,
	shiftRepo ShiftRepository,
	ruleRepo BufferRuleRepository,
	apptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		planRepo:  planRepo,
		shiftRepo: shiftRepo,
		ruleRepo:  ruleRepo,
		apptRepo:  apptRepo,
		logger:    logger,
	}
}

// Execute выполняет use case получения слотов
//
// Отсутствие правила буфера или смены для плана - не ошибка: день просто
// не имеет слотов, возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: admin=%d, plan=%d, date=%s",
		req.AdminID, req.PlanID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем план и проверяем принадлежность консультанту
	plan, err := uc.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			uc.logger.Warn("GetAvailableSlots: plan id=%d not found", req.PlanID)
			return nil, ErrPlanNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get plan id=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
	}
	if plan.OwnerID != req.AdminID {
		uc.logger.Warn("GetAvailableSlots: plan id=%d does not belong to admin=%d", req.PlanID, req.AdminID)
		return nil, ErrPlanNotFound
	}

	// 3. Резолвим смену и буфер через правила плана
	rules, err := uc.ruleRepo.ListByPlan(ctx, req.PlanID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get buffer rules for plan=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: failed to get buffer rules: %v", ErrInternal, err)
	}

	shifts, err := uc.shiftRepo.ListByOwner(ctx, req.AdminID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get shifts for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
	}

	shift, bufferMinutes := scheduling.ResolveBufferAndShift(req.PlanID, rules, shifts)
	if shift == nil {
		uc.logger.Info("GetAvailableSlots: no shift configured for plan=%d, returning empty slots", req.PlanID)
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 4. Генерируем слоты внутри окна смены
	windowStart, windowEnd := scheduling.ShiftWindowOn(shift, req.Date)
	slots := scheduling.GenerateSlots(windowStart, windowEnd, plan.DurationMinutes, bufferMinutes)

	// 5. Получаем активные записи на дату и нормализуем их к занятым интервалам
	appointments, err := uc.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		AdminID: req.AdminID,
		Date:    &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	busy, skipped := scheduling.NormalizeBlocking(toReservations(appointments), req.Date)
	for _, skipErr := range skipped {
		uc.logger.Warn("GetAvailableSlots: skipping malformed appointment: %v", skipErr)
	}

	// 6. Размечаем занятость слотов
	annotated := scheduling.Annotate(slots, busy)

	uc.logger.Info("GetAvailableSlots: generated %d slots for plan=%d, date=%s",
		len(annotated), req.PlanID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: toResponseSlots(annotated),
	}, nil
}

// toReservations конвертирует записи в форму, пригодную для нормализации.
// Времена берутся из label слота записи
func toReservations(appointments []*domain.Appointment) []scheduling.Reservation {
	reservations := make([]scheduling.Reservation, 0, len(appointments))
	for _, appt := range appointments {
		startTime, endTime, ok := scheduling.SplitSlotLabel(appt.AppointmentTime)
		if !ok {
			// Нераспарсиваемый label отбросит NormalizeBlocking со своей ошибкой
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

func toResponseSlots(annotated []domain.AnnotatedSlot) []Slot {
	slots := make([]Slot, 0, len(annotated))
	for _, s := range annotated {
		slots = append(slots, Slot{
			Label:     s.Label,
			StartTime: timeutil.Format24h(s.Start),
			EndTime:   timeutil.Format24h(s.End),
			IsBooked:  s.IsBooked,
		})
	}
	return slots
}
