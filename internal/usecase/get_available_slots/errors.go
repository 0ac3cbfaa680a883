package get_available_slots

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план не найден у консультанта
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
