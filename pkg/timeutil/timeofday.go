package timeutil

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTime возвращается при некорректной строке времени
	ErrInvalidTime = errors.New("timeutil: invalid time string")
)

// TimeOfDay время суток без привязки к дате (часы 0-23, минуты 0-59)
// Иммутабельное значение, безопасно для копирования
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseWallClock парсит строку времени в одном из поддерживаемых форматов:
// - "h:mm AM/PM" (12-часовой, регистр меридиема не важен)
// - "HH:mm" (24-часовой)
// - "HH:mm:ss" (24-часовой с секундами, секунды отбрасываются)
// Формат определяется по наличию подстроки "AM"/"PM"
func ParseWallClock(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty string", ErrInvalidTime)
	}

	upper := strings.ToUpper(s)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return parse12h(upper)
	}
	return parse24h(s)
}

// parse12h парсит "h:mm AM" / "h:mm PM" (строка уже в верхнем регистре)
func parse12h(s string) (TimeOfDay, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: expected \"h:mm AM/PM\", got %q", ErrInvalidTime, s)
	}

	meridiem := fields[1]
	if meridiem != "AM" && meridiem != "PM" {
		return TimeOfDay{}, fmt.Errorf("%w: unknown meridiem %q", ErrInvalidTime, meridiem)
	}

	hour, minute, err := splitClock(fields[0], 2)
	if err != nil {
		return TimeOfDay{}, err
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range 1-12", ErrInvalidTime, hour)
	}

	// 12 AM = полночь, 12 PM = полдень
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// parse24h парсит "HH:mm" или "HH:mm:ss"
func parse24h(s string) (TimeOfDay, error) {
	hour, minute, err := splitClock(s, 3)
	if err != nil {
		return TimeOfDay{}, err
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidTime, hour)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// splitClock разбирает "H:MM[:SS]" на час и минуту, валидируя числовые части
func splitClock(s string, maxParts int) (hour int, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > maxParts {
		return 0, 0, fmt.Errorf("%w: expected hour:minute, got %q", ErrInvalidTime, s)
	}

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: non-numeric hour %q", ErrInvalidTime, parts[0])
	}

	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: non-numeric minute %q", ErrInvalidTime, parts[1])
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidTime, minute)
	}

	if len(parts) == 3 {
		sec, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, fmt.Errorf("%w: invalid seconds %q", ErrInvalidTime, parts[2])
		}
	}

	return hour, minute, nil
}

// At привязывает время суток к конкретной дате в её локации
// Секунды и наносекунды обнуляются
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// MinutesSinceMidnight возвращает количество минут с полуночи
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes возвращает время суток, сдвинутое на m минут (с переносом через полночь)
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	total := t.MinutesSinceMidnight() + m
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Before возвращает true, если t раньше u
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.MinutesSinceMidnight() < u.MinutesSinceMidnight()
}

// After возвращает true, если t позже u
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.MinutesSinceMidnight() > u.MinutesSinceMidnight()
}

// Equal возвращает true, если t и u совпадают
func (t TimeOfDay) Equal(u TimeOfDay) bool {
	return t.Hour == u.Hour && t.Minute == u.Minute
}

// String возвращает 24-часовое представление "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format12 возвращает 12-часовое представление "h:mm AM/PM"
func (t TimeOfDay) Format12() string {
	return format12(t.Hour, t.Minute)
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	case []byte:
		parsed, err := ParseWallClock(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseWallClock(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeOfDay", ErrInvalidTime, src)
	}
}

// Value реализует driver.Valuer, сериализует в "HH:MM:SS"
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute), nil
}

// Format12h форматирует момент времени как "h:mm AM/PM":
// час без ведущего нуля, минуты всегда две цифры, полдень = 12 PM, полночь = 12 AM
func Format12h(instant time.Time) string {
	return format12(instant.Hour(), instant.Minute())
}

// Format24h форматирует момент времени как "HH:mm" с ведущими нулями
func Format24h(instant time.Time) string {
	return fmt.Sprintf("%02d:%02d", instant.Hour(), instant.Minute())
}

func format12(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [startA, endA) и [startB, endB)
// Интервалы, граничащие точно в одной точке, НЕ пересекаются
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
