package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrAccessDenied возвращается, когда смена принадлежит другому консультанту
	ErrAccessDenied = errors.New("access denied")

	// ErrShiftOverlap возвращается, когда смена пересекается с существующей
	ErrShiftOverlap = errors.New("shift overlaps with an existing shift")

	// ErrShiftInUse возвращается при попытке удалить смену, на которую
	// ссылается правило буфера
	ErrShiftInUse = errors.New("shift is referenced by a buffer rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
