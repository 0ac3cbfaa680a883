package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlocking_StatusFilter(t *testing.T) {
	reservations := []Reservation{
		{StartTime: "9:00 AM", EndTime: "9:30 AM", Status: "Scheduled"},
		{StartTime: "10:00 AM", EndTime: "10:30 AM", Status: "Completed"},
		{StartTime: "11:00 AM", EndTime: "11:30 AM", Status: "Cancelled"},
		{StartTime: "12:00 PM", EndTime: "12:30 PM", Status: "Rescheduled"},
		{StartTime: "1:00 PM", EndTime: "1:30 PM", Status: "Pending"},
	}

	busy, skipped := NormalizeBlocking(reservations, testDay)

	assert.Empty(t, skipped)
	// Completed и Cancelled освобождают слот
	require.Len(t, busy, 3)
	assert.Equal(t, at(9, 0), busy[0].Start)
	assert.Equal(t, at(12, 0), busy[1].Start)
	assert.Equal(t, at(13, 0), busy[2].Start)
}

func TestNormalizeBlocking_EmptyAndUnknownStatusBlock(t *testing.T) {
	// Пустой статус - живая запись неизвестной природы, консервативно блокирует
	reservations := []Reservation{
		{StartTime: "9:00 AM", EndTime: "9:30 AM", Status: ""},
		{StartTime: "10:00 AM", EndTime: "10:30 AM", Status: "Paid"},
	}

	busy, skipped := NormalizeBlocking(reservations, testDay)
	assert.Empty(t, skipped)
	assert.Len(t, busy, 2)
}

func TestNormalizeBlocking_NumericStatusCodes(t *testing.T) {
	// Legacy-клиенты присылают коды: 0=Scheduled ... 4=Pending
	reservations := []Reservation{
		{StartTime: "9:00 AM", EndTime: "9:30 AM", Status: "0"},  // Scheduled
		{StartTime: "10:00 AM", EndTime: "10:30 AM", Status: "1"}, // Completed
		{StartTime: "11:00 AM", EndTime: "11:30 AM", Status: "2"}, // Cancelled
		{StartTime: "12:00 PM", EndTime: "12:30 PM", Status: "3"}, // Rescheduled
	}

	busy, skipped := NormalizeBlocking(reservations, testDay)
	assert.Empty(t, skipped)
	require.Len(t, busy, 2)
	assert.Equal(t, at(9, 0), busy[0].Start)
	assert.Equal(t, at(12, 0), busy[1].Start)
}

func TestNormalizeBlocking_MixedTimeForms(t *testing.T) {
	// Внешний API отдаёт времена и в 12-часовой, и в 24-часовой форме
	reservations := []Reservation{
		{StartTime: "09:00", EndTime: "09:30", Status: "Scheduled"},
		{StartTime: "2:00 PM", EndTime: "2:45 PM", Status: "Scheduled"},
		{StartTime: "16:00:00", EndTime: "16:30:00", Status: "Scheduled"},
	}

	busy, skipped := NormalizeBlocking(reservations, testDay)
	assert.Empty(t, skipped)
	require.Len(t, busy, 3)
	assert.Equal(t, at(9, 0), busy[0].Start)
	assert.Equal(t, at(14, 0), busy[1].Start)
	assert.Equal(t, at(16, 30), busy[2].End)
}

func TestNormalizeBlocking_MalformedRecordSkipped(t *testing.T) {
	reservations := []Reservation{
		{StartTime: "not a time", EndTime: "9:30 AM", Status: "Scheduled"},
		{StartTime: "10:00 AM", EndTime: "garbage", Status: "Scheduled"},
		{StartTime: "11:00 AM", EndTime: "11:30 AM", Status: "Scheduled"},
	}

	busy, skipped := NormalizeBlocking(reservations, testDay)

	// Одна битая запись не роняет выборку и не теряет валидные
	require.Len(t, busy, 1)
	assert.Equal(t, at(11, 0), busy[0].Start)
	assert.Len(t, skipped, 2)
}

func TestAnnotate_BookedAndAvailable(t *testing.T) {
	// Сквозной сценарий: смена 09:00-10:30, длительность 30, буфер 10,
	// бронь 09:00-09:30 (24-часовая форма) со статусом Scheduled
	slots := GenerateSlots(at(9, 0), at(10, 30), 30, 10)
	require.Len(t, slots, 2)

	busy, skipped := NormalizeBlocking([]Reservation{
		{StartTime: "09:00", EndTime: "09:30", Status: "Scheduled"},
	}, testDay)
	require.Empty(t, skipped)

	annotated := Annotate(slots, busy)
	require.Len(t, annotated, 2)

	assert.Equal(t, "9:00 AM - 9:30 AM", annotated[0].Label)
	assert.True(t, annotated[0].IsBooked)
	assert.Equal(t, "9:40 AM - 10:10 AM", annotated[1].Label)
	assert.False(t, annotated[1].IsBooked)
}

func TestAnnotate_CompletedNeverBlocks(t *testing.T) {
	slots := GenerateSlots(at(9, 0), at(10, 30), 30, 10)

	for _, status := range []string{"Completed", "Cancelled"} {
		busy, _ := NormalizeBlocking([]Reservation{
			{StartTime: "9:00 AM", EndTime: "9:30 AM", Status: status},
		}, testDay)

		annotated := Annotate(slots, busy)
		for _, s := range annotated {
			assert.False(t, s.IsBooked, "status %s must not block", status)
		}
	}
}

func TestAnnotate_PartialOverlapBlocks(t *testing.T) {
	slots := GenerateSlots(at(9, 0), at(11, 0), 30, 0)
	require.Len(t, slots, 4)

	// Бронь 09:15-09:45 пересекает первые два слота
	busy, _ := NormalizeBlocking([]Reservation{
		{StartTime: "9:15 AM", EndTime: "9:45 AM", Status: "Scheduled"},
	}, testDay)

	annotated := Annotate(slots, busy)
	assert.True(t, annotated[0].IsBooked)
	assert.True(t, annotated[1].IsBooked)
	assert.False(t, annotated[2].IsBooked)
	assert.False(t, annotated[3].IsBooked)
}

func TestAnnotate_TouchingBoundaryDoesNotBlock(t *testing.T) {
	slots := GenerateSlots(at(10, 0), at(10, 30), 30, 0)
	require.Len(t, slots, 1)

	// Бронь заканчивается ровно в момент начала слота
	busy, _ := NormalizeBlocking([]Reservation{
		{StartTime: "9:30 AM", EndTime: "10:00 AM", Status: "Scheduled"},
		{StartTime: "10:30 AM", EndTime: "11:00 AM", Status: "Scheduled"},
	}, testDay)

	annotated := Annotate(slots, busy)
	assert.False(t, annotated[0].IsBooked)
}

func TestAnnotate_NoBusyIntervals(t *testing.T) {
	slots := GenerateSlots(at(9, 0), at(10, 0), 30, 0)
	annotated := Annotate(slots, nil)

	require.Len(t, annotated, 2)
	for _, s := range annotated {
		assert.False(t, s.IsBooked)
	}
}
