package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/timeutil"
)

var testDay = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), h, m, 0, 0, time.UTC)
}

func TestGenerateSlots_Basic(t *testing.T) {
	// Смена 09:00-10:30, длительность 30, буфер 10:
	// 9:00-9:30, 9:40-10:10; кандидат 10:20-10:50 выходит за 10:30
	slots := GenerateSlots(at(9, 0), at(10, 30), 30, 10)

	require.Len(t, slots, 2)
	assert.Equal(t, "9:00 AM - 9:30 AM", slots[0].Label)
	assert.Equal(t, "9:40 AM - 10:10 AM", slots[1].Label)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 30), slots[0].End)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first := GenerateSlots(at(9, 0), at(18, 0), 45, 15)
	second := GenerateSlots(at(9, 0), at(18, 0), 45, 15)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_DurationInvariant(t *testing.T) {
	slots := GenerateSlots(at(8, 0), at(20, 0), 25, 5)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.Equal(t, 25*time.Minute, s.End.Sub(s.Start))
	}
}

func TestGenerateSlots_MonotonicSpacing(t *testing.T) {
	slots := GenerateSlots(at(8, 0), at(20, 0), 30, 10)
	require.Greater(t, len(slots), 1)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 10*time.Minute, slots[i].Start.Sub(slots[i-1].End))
	}
}

func TestGenerateSlots_BoundaryRespect(t *testing.T) {
	shiftEnd := at(17, 45)
	slots := GenerateSlots(at(9, 0), shiftEnd, 50, 7)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.False(t, s.End.After(shiftEnd), "slot %s exceeds shift end", s.Label)
	}

	// Последний слот - наибольший, достижимый правилом шага:
	// следующий кандидат уже не влезает
	last := slots[len(slots)-1]
	nextStart := last.End.Add(7 * time.Minute)
	assert.True(t, nextStart.Add(50*time.Minute).After(shiftEnd))
}

func TestGenerateSlots_EmptyInputSafety(t *testing.T) {
	var zero time.Time

	assert.Empty(t, GenerateSlots(zero, zero, 30, 10))
	assert.Empty(t, GenerateSlots(at(9, 0), zero, 30, 10))
	assert.Empty(t, GenerateSlots(at(9, 0), at(17, 0), 0, 10))
	assert.Empty(t, GenerateSlots(at(9, 0), at(17, 0), -5, 10))

	// Слот не влезает в окно вообще
	assert.Empty(t, GenerateSlots(at(9, 0), at(9, 20), 30, 0))
}

func TestGenerateSlots_NegativeBufferTreatedAsZero(t *testing.T) {
	withNegative := GenerateSlots(at(9, 0), at(11, 0), 30, -15)
	withZero := GenerateSlots(at(9, 0), at(11, 0), 30, 0)
	assert.Equal(t, withZero, withNegative)
}

func TestGenerateSlots_ZeroBuffer(t *testing.T) {
	slots := GenerateSlots(at(9, 0), at(10, 0), 30, 0)
	require.Len(t, slots, 2)
	assert.Equal(t, slots[0].End, slots[1].Start)
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	// Конец последнего слота ровно на границе смены - слот включается
	slots := GenerateSlots(at(9, 0), at(10, 0), 60, 10)
	require.Len(t, slots, 1)
	assert.Equal(t, at(10, 0), slots[0].End)
}

func TestGenerateSlots_LabelStability(t *testing.T) {
	// Label обязан совпадать байт-в-байт при повторной генерации:
	// это ключ идентичности слота при бронировании
	slots := GenerateSlots(at(11, 30), at(13, 30), 40, 5)
	regenerated := GenerateSlots(at(11, 30), at(13, 30), 40, 5)

	require.Equal(t, len(slots), len(regenerated))
	for i := range slots {
		assert.Equal(t, slots[i].Label, regenerated[i].Label)
	}

	// Полдень форматируется как 12 PM
	require.NotEmpty(t, slots)
	assert.Equal(t, "11:30 AM - 12:10 PM", slots[0].Label)
}

func TestShiftWindowOn_Normal(t *testing.T) {
	shift := &domain.Shift{
		StartTime: timeutil.TimeOfDay{Hour: 9, Minute: 0},
		EndTime:   timeutil.TimeOfDay{Hour: 17, Minute: 0},
	}

	start, end := ShiftWindowOn(shift, testDay)
	assert.Equal(t, at(9, 0), start)
	assert.Equal(t, at(17, 0), end)
}

func TestShiftWindowOn_Overnight(t *testing.T) {
	// Смена 22:00-02:00 переходит через полночь
	shift := &domain.Shift{
		StartTime: timeutil.TimeOfDay{Hour: 22, Minute: 0},
		EndTime:   timeutil.TimeOfDay{Hour: 2, Minute: 0},
	}

	start, end := ShiftWindowOn(shift, testDay)
	assert.Equal(t, at(22, 0), start)
	assert.Equal(t, at(2, 0).AddDate(0, 0, 1), end)

	// Окно остаётся генерируемым
	slots := GenerateSlots(start, end, 60, 0)
	assert.Len(t, slots, 4)
}
