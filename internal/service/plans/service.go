package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/consultly/booking-service/internal/domain"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	"github.com/consultly/booking-service/internal/service/plans/models"
)

// Service сервис для работы с планами консультаций
type Service struct {
	planRepo PlanRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса планов
func NewService(planRepo PlanRepository, logger Logger) *Service {
	return &Service{
		planRepo: planRepo,
		logger:   logger,
	}
}

// List получает все планы консультанта
func (s *Service) List(ctx context.Context, adminID int64) (*models.PlanListResponse, error) {
	s.logger.Info("List: fetching plans for admin=%d", adminID)

	plans, err := s.planRepo.ListByOwner(ctx, adminID)
	if err != nil {
		s.logger.Error("List: repository error for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d plans for admin=%d", len(plans), adminID)
	return models.FromDomainPlanList(plans), nil
}

// Create создает новый план
func (s *Service) Create(ctx context.Context, req *models.CreatePlanRequest) (*models.PlanResponse, error) {
	s.logger.Info("Create: creating plan %q for admin=%d", req.Name, req.AdminID)

	if err := validatePlanInput(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: invalid plan input for admin=%d: %v", req.AdminID, err)
		return nil, err
	}

	created, err := s.planRepo.Create(ctx, &domain.Plan{
		OwnerID:         req.AdminID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Features:        req.Features,
	})
	if err != nil {
		s.logger.Error("Create: repository error for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created plan id=%d for admin=%d", created.ID, req.AdminID)
	return models.FromDomainPlan(created), nil
}

// Update обновляет план
func (s *Service) Update(ctx context.Context, planID int64, req *models.UpdatePlanRequest) (*models.PlanResponse, error) {
	s.logger.Info("Update: updating plan id=%d for admin=%d", planID, req.AdminID)

	if err := validatePlanInput(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: invalid plan input for plan id=%d: %v", planID, err)
		return nil, err
	}

	if _, err := s.getOwned(ctx, planID, req.AdminID, "Update"); err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		ID:              planID,
		OwnerID:         req.AdminID,
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Features:        req.Features,
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Update: plan id=%d not found during update", planID)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("Update: repository error for plan id=%d: %v", planID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		s.logger.Error("Update: failed to reload plan id=%d: %v", planID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated plan id=%d", planID)
	return models.FromDomainPlan(updated), nil
}

// Delete удаляет план
// Правила буферов удаляются каскадно на уровне схемы БД
func (s *Service) Delete(ctx context.Context, planID int64, adminID int64) error {
	s.logger.Info("Delete: deleting plan id=%d for admin=%d", planID, adminID)

	if _, err := s.getOwned(ctx, planID, adminID, "Delete"); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, planID, adminID); err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("Delete: plan id=%d not found during delete", planID)
			return ErrPlanNotFound
		}
		s.logger.Error("Delete: repository error for plan id=%d: %v", planID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted plan id=%d", planID)
	return nil
}

// getOwned получает план и проверяет, что он принадлежит консультанту
func (s *Service) getOwned(ctx context.Context, planID, adminID int64, op string) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, planRepo.ErrPlanNotFound) {
			s.logger.Warn("%s: plan id=%d not found", op, planID)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("%s: repository error for plan id=%d: %v", op, planID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if plan.OwnerID != adminID {
		s.logger.Warn("%s: access denied for admin=%d to plan id=%d", op, adminID, planID)
		return nil, ErrAccessDenied
	}

	return plan, nil
}

func validatePlanInput(name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: plan name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinPlanDurationMinutes || durationMinutes > domain.MaxPlanDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinPlanDurationMinutes, domain.MaxPlanDurationMinutes)
	}
	return nil
}
