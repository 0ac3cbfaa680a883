package scheduling

import (
	"strings"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/timeutil"
)

// GenerateSlots генерирует последовательность кандидатных слотов внутри окна смены.
// Курсор стартует от начала смены; каждый слот длится durationMinutes, между
// соседними слотами вставляется bufferMinutes простоя. Слот, чей конец выходит
// за конец смены, не эмитится.
//
// Недостаточные входные данные (нулевые моменты, неположительная длительность) -
// это не ошибка, а обычное состояние "слотов нет": возвращается пустой срез.
// Отрицательный буфер интерпретируется как ноль.
//
// Завершение гарантировано: курсор строго растёт минимум на durationMinutes
// за итерацию при фиксированной границе shiftEnd
func GenerateSlots(shiftStart, shiftEnd time.Time, durationMinutes, bufferMinutes int) []domain.Slot {
	if shiftStart.IsZero() || shiftEnd.IsZero() || durationMinutes <= 0 {
		return []domain.Slot{}
	}
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}

	duration := time.Duration(durationMinutes) * time.Minute
	buffer := time.Duration(bufferMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	cursor := shiftStart

	for {
		slotEnd := cursor.Add(duration)
		if slotEnd.After(shiftEnd) {
			break
		}

		slots = append(slots, domain.Slot{
			Start: cursor,
			End:   slotEnd,
			Label: SlotLabel(cursor, slotEnd),
		})

		cursor = slotEnd.Add(buffer)
	}

	return slots
}

// SlotLabel каноническое человекочитаемое представление слота.
// Формат обязан быть байт-стабильным: label используется как идентичность
// слота при сопоставлении выбора пользователя с временным интервалом
func SlotLabel(start, end time.Time) string {
	return timeutil.Format12h(start) + " - " + timeutil.Format12h(end)
}

// SplitSlotLabel разбирает label слота обратно на строки начала и конца.
// Обратная операция к SlotLabel; ok=false для строк другой формы
func SplitSlotLabel(label string) (startTime, endTime string, ok bool) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// ShiftWindowOn привязывает окно смены к конкретной дате.
// Если конец смены не позже начала, окно трактуется как ночная смена
// и конец переносится на следующий календарный день
func ShiftWindowOn(shift *domain.Shift, date time.Time) (start, end time.Time) {
	start = shift.StartTime.At(date)
	end = shift.EndTime.At(date)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
