package scheduling

import "github.com/consultly/booking-service/internal/domain"

// ResolveBufferAndShift находит смену и буфер, сконфигурированные для плана.
// Берётся первое правило с подходящим planId (правила приходят из хранилища
// упорядоченными по id, так что "первое" детерминировано).
//
// Отсутствие правила или нерезолвящийся shiftId - не ошибка: возвращается
// (nil, 0), и генерация слотов корректно выдаст пустой список
func ResolveBufferAndShift(planID int64, rules []*domain.BufferRule, shifts []*domain.Shift) (*domain.Shift, int) {
	var rule *domain.BufferRule
	for _, r := range rules {
		if r.PlanID == planID {
			rule = r
			break
		}
	}
	if rule == nil {
		return nil, 0
	}

	for _, s := range shifts {
		if s.ID == rule.ShiftID {
			return s, rule.BufferMinutes
		}
	}
	return nil, 0
}
