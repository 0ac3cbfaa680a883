package scheduling

import (
	"fmt"
	"time"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/timeutil"
)

// Reservation существующая запись в том виде, в каком её отдаёт внешний мир:
// времена - строки в 12-часовой ("9:00 AM") или 24-часовой ("09:00[:00]") форме,
// статус - строка или числовой код (см. domain.ParseAppointmentStatus)
type Reservation struct {
	StartTime string
	EndTime   string
	Status    string
}

// BusyInterval временной интервал, занятый блокирующей записью
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// NormalizeBlocking нормализует записи к занятым интервалам на указанную дату.
// Записи с неблокирующим статусом (Cancelled, Completed) отбрасываются.
// Пустой или неизвестный статус считается блокирующим - живая запись,
// природа которой неясна, консервативно занимает слот.
//
// Записи с нераспарсиваемым временем пропускаются, а не роняют всю выборку:
// одна битая запись не должна сделать все слоты свободными или занятыми.
// Ошибки по пропущенным записям возвращаются вторым значением для логирования
func NormalizeBlocking(reservations []Reservation, onDate time.Time) ([]BusyInterval, []error) {
	busy := make([]BusyInterval, 0, len(reservations))
	var skipped []error

	for i, res := range reservations {
		if status, ok := domain.ParseAppointmentStatus(res.Status); ok && !status.Blocks() {
			continue
		}

		start, err := timeutil.ParseWallClock(res.StartTime)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("reservation %d: start time %q: %w", i, res.StartTime, err))
			continue
		}

		end, err := timeutil.ParseWallClock(res.EndTime)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("reservation %d: end time %q: %w", i, res.EndTime, err))
			continue
		}

		interval := BusyInterval{Start: start.At(onDate), End: end.At(onDate)}
		// Запись, пересекающая полночь, заканчивается на следующий день
		if !interval.End.After(interval.Start) {
			interval.End = interval.End.AddDate(0, 0, 1)
		}

		busy = append(busy, interval)
	}

	return busy, skipped
}

// Annotate размечает каждый слот как занятый или свободный.
// Слот занят, если ЛЮБОЙ занятый интервал пересекается с ним
// (полуоткрытая семантика: граничащие интервалы не пересекаются).
//
// Сканирование O(слоты * записи); при дневных кардинальностях в десятки
// записей интервальное дерево не требуется
func Annotate(slots []domain.Slot, busy []BusyInterval) []domain.AnnotatedSlot {
	annotated := make([]domain.AnnotatedSlot, len(slots))

	for i, slot := range slots {
		isBooked := false
		for _, b := range busy {
			if timeutil.Overlaps(slot.Start, slot.End, b.Start, b.End) {
				isBooked = true
				break
			}
		}
		annotated[i] = domain.AnnotatedSlot{Slot: slot, IsBooked: isBooked}
	}

	return annotated
}
