package bufferrule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило буфера не найдено
	ErrRuleNotFound = errors.New("bufferrule.repository: buffer rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bufferrule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bufferrule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bufferrule.repository: failed to scan row")
)
