package plans

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план не найден
	ErrPlanNotFound = errors.New("plan not found")

	// ErrAccessDenied возвращается, когда план принадлежит другому консультанту
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
