package bufferrules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило буфера не найдено
	ErrRuleNotFound = errors.New("buffer rule not found")

	// ErrPlanNotFound возвращается, когда план не найден
	ErrPlanNotFound = errors.New("plan not found")

	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrAccessDenied возвращается, когда план или смена принадлежит
	// другому консультанту
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
