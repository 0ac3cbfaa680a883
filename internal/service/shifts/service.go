package shifts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/consultly/booking-service/internal/domain"
	shiftRepo "github.com/consultly/booking-service/internal/infra/storage/shift"
	"github.com/consultly/booking-service/internal/scheduling"
	"github.com/consultly/booking-service/internal/service/shifts/models"
)

// Service сервис для работы со сменами консультантов
type Service struct {
	shiftRepo ShiftRepository
	ruleRepo  BufferRuleRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, ruleRepo BufferRuleRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		ruleRepo:  ruleRepo,
		logger:    logger,
	}
}

// List получает все смены консультанта, упорядоченные по времени начала
func (s *Service) List(ctx context.Context, adminID int64) (*models.ShiftListResponse, error) {
	s.logger.Info("List: fetching shifts for admin=%d", adminID)

	shifts, err := s.shiftRepo.ListByOwner(ctx, adminID)
	if err != nil {
		s.logger.Error("List: repository error for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d shifts for admin=%d", len(shifts), adminID)
	return models.FromDomainShiftList(shifts), nil
}

// Create создает новую смену
// Перед сохранением смена проверяется на пересечение с остальными сменами
// консультанта; при конфликте сохранение блокируется целиком
func (s *Service) Create(ctx context.Context, req *models.CreateShiftRequest) (*models.ShiftResponse, error) {
	s.logger.Info("Create: creating shift %q for admin=%d", req.Name, req.AdminID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty shift name for admin=%d", req.AdminID)
		return nil, fmt.Errorf("%w: shift name is required", ErrInvalidInput)
	}

	candidate, err := req.ToDomainShift()
	if err != nil {
		s.logger.Warn("Create: invalid time for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.shiftRepo.ListByOwner(ctx, req.AdminID)
	if err != nil {
		s.logger.Error("Create: repository error for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	if err := scheduling.ValidateShiftOverlap(candidate, existing, 0); err != nil {
		s.logger.Warn("Create: shift %q overlaps for admin=%d: %v", req.Name, req.AdminID, err)
		return nil, fmt.Errorf("%w: %w", ErrShiftOverlap, err)
	}

	created, err := s.shiftRepo.Create(ctx, candidate)
	if err != nil {
		s.logger.Error("Create: repository error for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created shift id=%d for admin=%d", created.ID, req.AdminID)
	return models.FromDomainShift(created), nil
}

// Update обновляет смену
// Редактируемая смена исключается из проверки пересечений по своему id
func (s *Service) Update(ctx context.Context, shiftID int64, req *models.UpdateShiftRequest) (*models.ShiftResponse, error) {
	s.logger.Info("Update: updating shift id=%d for admin=%d", shiftID, req.AdminID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Update: empty shift name for shift id=%d", shiftID)
		return nil, fmt.Errorf("%w: shift name is required", ErrInvalidInput)
	}

	candidate, err := req.ToDomainShift()
	if err != nil {
		s.logger.Warn("Update: invalid time for shift id=%d: %v", shiftID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	candidate.ID = shiftID

	if _, err := s.getOwned(ctx, shiftID, req.AdminID, "Update"); err != nil {
		return nil, err
	}

	existing, err := s.shiftRepo.ListByOwner(ctx, req.AdminID)
	if err != nil {
		s.logger.Error("Update: repository error for admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := scheduling.ValidateShiftOverlap(candidate, existing, shiftID); err != nil {
		s.logger.Warn("Update: shift id=%d overlaps for admin=%d: %v", shiftID, req.AdminID, err)
		return nil, fmt.Errorf("%w: %w", ErrShiftOverlap, err)
	}

	if err := s.shiftRepo.Update(ctx, candidate); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Update: shift id=%d not found during update", shiftID)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("Update: repository error for shift id=%d: %v", shiftID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		s.logger.Error("Update: failed to reload shift id=%d: %v", shiftID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated shift id=%d", shiftID)
	return models.FromDomainShift(updated), nil
}

// Delete удаляет смену
// Смена, на которую ссылается правило буфера, не удаляется - сначала
// нужно удалить или перенастроить правило
func (s *Service) Delete(ctx context.Context, shiftID int64, adminID int64) error {
	s.logger.Info("Delete: deleting shift id=%d for admin=%d", shiftID, adminID)

	if _, err := s.getOwned(ctx, shiftID, adminID, "Delete"); err != nil {
		return err
	}

	inUse, err := s.ruleRepo.ExistsByShift(ctx, shiftID)
	if err != nil {
		s.logger.Error("Delete: failed to check buffer rules for shift id=%d: %v", shiftID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("Delete: shift id=%d is referenced by a buffer rule", shiftID)
		return ErrShiftInUse
	}

	if err := s.shiftRepo.Delete(ctx, shiftID, adminID); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Delete: shift id=%d not found during delete", shiftID)
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: repository error for shift id=%d: %v", shiftID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted shift id=%d", shiftID)
	return nil
}

// getOwned получает смену и проверяет, что она принадлежит консультанту
func (s *Service) getOwned(ctx context.Context, shiftID, adminID int64, op string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("%s: shift id=%d not found", op, shiftID)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("%s: repository error for shift id=%d: %v", op, shiftID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if shift.OwnerID != adminID {
		s.logger.Warn("%s: access denied for admin=%d to shift id=%d", op, adminID, shiftID)
		return nil, ErrAccessDenied
	}

	return shift, nil
}
