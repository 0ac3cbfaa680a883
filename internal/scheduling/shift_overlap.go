package scheduling

import (
	"fmt"

	"github.com/consultly/booking-service/internal/domain"
)

// OverlapError конфликт кандидатной смены с существующей.
// Несёт идентичность и окно конфликтующей смены - она показывается
// пользователю в сообщении валидации, сохранение блокируется целиком
type OverlapError struct {
	ConflictID    int64
	ConflictName  string
	ConflictStart string // "HH:MM"
	ConflictEnd   string // "HH:MM"
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("shift overlaps with %q (%s - %s)", e.ConflictName, e.ConflictStart, e.ConflictEnd)
}

// ValidateShiftOverlap проверяет кандидатную смену на пересечение с остальными
// сменами того же владельца. Сравнение ведётся в минутах с полуночи.
// Смена, редактируемая в данный момент, исключается по excludeID (0 = ничего
// не исключать). Граничащие смены (конец одной = начало другой) допустимы.
//
// Возвращает первый найденный конфликт; вызывается ДО любого create/update
func ValidateShiftOverlap(candidate *domain.Shift, existing []*domain.Shift, excludeID int64) error {
	candStart := candidate.StartTime.MinutesSinceMidnight()
	candEnd := candidate.EndTime.MinutesSinceMidnight()

	for _, s := range existing {
		if excludeID != 0 && s.ID == excludeID {
			continue
		}

		existStart := s.StartTime.MinutesSinceMidnight()
		existEnd := s.EndTime.MinutesSinceMidnight()

		if !(candEnd <= existStart || candStart >= existEnd) {
			return &OverlapError{
				ConflictID:    s.ID,
				ConflictName:  s.Name,
				ConflictStart: s.StartTime.String(),
				ConflictEnd:   s.EndTime.String(),
			}
		}
	}

	return nil
}
