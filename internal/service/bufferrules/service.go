package bufferrules

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultly/booking-service/internal/domain"
	ruleRepo "github.com/consultly/booking-service/internal/infra/storage/bufferrule"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	shiftRepo "github.com/consultly/booking-service/internal/infra/storage/shift"
	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

// Service сервис для работы с правилами буферов между слотами
type Service struct {
	ruleRepo  BufferRuleRepository
	planRepo  PlanRepository
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил буферов
func NewService(
	ruleRepo BufferRuleRepository,
	planRepo PlanRepository,
	shiftRepo ShiftRepository,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		planRepo:  planRepo,
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// List получает все правила буферов консультанта
func (s *Service) List(ctx context.Context, adminID int64) (*models.BufferRuleListResponse, error) {
	s.logger.Info("List: fetching buffer rules for admin=%d", adminID)

	rules, err := s.ruleRepo.ListByOwner(ctx, adminID)
	if err != nil {
		s.logger.Error("List: repository error for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d buffer rules for admin=%d", len(rules), adminID)
	return models.FromDomainBufferRuleList(rules), nil
}

// Upsert создает правило буфера или обновляет буфер существующей пары план-смена
// План и смена должны существовать и принадлежать консультанту
// Отрицательный буфер приводится к нулю
func (s *Service) Upsert(ctx context.Context, req *models.UpsertBufferRuleRequest) (*models.BufferRuleResponse, error) {
	s.logger.Info("Upsert: upserting buffer rule plan=%d shift=%d buffer=%d for admin=%d",
		req.PlanID, req.ShiftID, req.BufferMinutes, req.AdminID)

	if req.BufferMinutes > domain.MaxBufferMinutes {
		s.logger.Warn("Upsert: buffer=%d exceeds maximum for admin=%d", req.BufferMinutes, req.AdminID)
		return nil, fmt.Errorf("%w: buffer must not exceed %d minutes", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Upsert: plan id=%d not found", req.PlanID)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Upsert: repository error for plan id=%d: %v", req.PlanID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	shift, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Upsert: shift id=%d not found", req.ShiftID)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("Upsert: repository error for shift id=%d: %v", req.ShiftID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	if plan.OwnerID != req.AdminID || shift.OwnerID != req.AdminID {
		s.logger.Warn("Upsert: access denied for admin=%d to plan=%d / shift=%d", req.AdminID, req.PlanID, req.ShiftID)
		return nil, ErrAccessDenied
	}

	buffer := req.BufferMinutes
	if buffer < 0 {
		s.logger.Warn("Upsert: negative buffer=%d clamped to 0 for plan=%d", buffer, req.PlanID)
		buffer = 0
	}

	rule, err := s.ruleRepo.Upsert(ctx, &domain.BufferRule{
		PlanID:        req.PlanID,
		ShiftID:       req.ShiftID,
		BufferMinutes: buffer,
	})
	if err != nil {
		s.logger.Error("Upsert: repository error for plan=%d shift=%d: %v", req.PlanID, req.ShiftID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted buffer rule id=%d", rule.ID)
	return models.FromDomainBufferRule(rule), nil
}

// Delete удаляет правило буфера
func (s *Service) Delete(ctx context.Context, ruleID int64, adminID int64) error {
	s.logger.Info("Delete: deleting buffer rule id=%d for admin=%d", ruleID, adminID)

	rules, err := s.ruleRepo.ListByOwner(ctx, adminID)
	if err != nil {
		s.logger.Error("Delete: repository error for admin=%d: %v", adminID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Правило должно принадлежать консультанту (через план)
	owned := false
	for _, r := range rules {
		if r.ID == ruleID {
			owned = true
			break
		}
	}
	if !owned {
		s.logger.Warn("Delete: buffer rule id=%d not found for admin=%d", ruleID, adminID)
		return ErrRuleNotFound
	}

	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: buffer rule id=%d not found during delete", ruleID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for buffer rule id=%d: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted buffer rule id=%d", ruleID)
	return nil
}
