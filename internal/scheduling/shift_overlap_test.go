package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	"github.com/consultly/booking-service/pkg/timeutil"
)

func shiftAt(id int64, name string, startH, startM, endH, endM int) *domain.Shift {
	return &domain.Shift{
		ID:        id,
		Name:      name,
		StartTime: timeutil.TimeOfDay{Hour: startH, Minute: startM},
		EndTime:   timeutil.TimeOfDay{Hour: endH, Minute: endM},
	}
}

func TestValidateShiftOverlap_Conflict(t *testing.T) {
	existing := []*domain.Shift{
		shiftAt(1, "Morning", 9, 0, 12, 0),
	}

	// 11:30-14:00 пересекается с 09:00-12:00
	candidate := shiftAt(0, "Afternoon", 11, 30, 14, 0)
	err := ValidateShiftOverlap(candidate, existing, 0)

	require.Error(t, err)
	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, int64(1), overlapErr.ConflictID)
	assert.Equal(t, "Morning", overlapErr.ConflictName)
	assert.Equal(t, "09:00", overlapErr.ConflictStart)
	assert.Equal(t, "12:00", overlapErr.ConflictEnd)
}

func TestValidateShiftOverlap_TouchingBoundaryAllowed(t *testing.T) {
	existing := []*domain.Shift{
		shiftAt(1, "Morning", 9, 0, 12, 0),
	}

	// 12:00-14:00 граничит с 09:00-12:00 - конфликта нет
	candidate := shiftAt(0, "Afternoon", 12, 0, 14, 0)
	assert.NoError(t, ValidateShiftOverlap(candidate, existing, 0))

	// И с другой стороны
	before := shiftAt(0, "Early", 7, 0, 9, 0)
	assert.NoError(t, ValidateShiftOverlap(before, existing, 0))
}

func TestValidateShiftOverlap_ContainedConflict(t *testing.T) {
	existing := []*domain.Shift{
		shiftAt(1, "Workday", 9, 0, 18, 0),
	}

	candidate := shiftAt(0, "Lunch", 12, 0, 13, 0)
	require.Error(t, ValidateShiftOverlap(candidate, existing, 0))
}

func TestValidateShiftOverlap_ExcludesEditedShift(t *testing.T) {
	existing := []*domain.Shift{
		shiftAt(1, "Morning", 9, 0, 12, 0),
		shiftAt(2, "Evening", 15, 0, 19, 0),
	}

	// Редактируем смену id=1: пересечение с самой собой не считается
	candidate := shiftAt(1, "Morning", 9, 30, 12, 30)
	assert.NoError(t, ValidateShiftOverlap(candidate, existing, 1))

	// Но пересечение с другой сменой по-прежнему ловится
	candidate = shiftAt(1, "Morning", 9, 0, 16, 0)
	require.Error(t, ValidateShiftOverlap(candidate, existing, 1))
}

func TestValidateShiftOverlap_FirstConflictReturned(t *testing.T) {
	existing := []*domain.Shift{
		shiftAt(1, "A", 9, 0, 11, 0),
		shiftAt(2, "B", 10, 0, 12, 0),
	}

	candidate := shiftAt(0, "C", 10, 30, 13, 0)
	err := ValidateShiftOverlap(candidate, existing, 0)

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, int64(1), overlapErr.ConflictID)
}

func TestValidateShiftOverlap_NoShifts(t *testing.T) {
	candidate := shiftAt(0, "First", 9, 0, 17, 0)
	assert.NoError(t, ValidateShiftOverlap(candidate, nil, 0))
}
