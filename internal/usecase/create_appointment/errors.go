package create_appointment

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план не найден у консультанта
	ErrPlanNotFound = errors.New("plan not found")

	// ErrSlotNotFound возвращается, когда выбранный слот не существует
	// в расписании плана на указанную дату
	ErrSlotNotFound = errors.New("slot does not exist for this plan and date")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
