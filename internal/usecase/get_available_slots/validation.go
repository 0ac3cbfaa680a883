package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AdminID <= 0 {
		return fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}

	if req.PlanID <= 0 {
		return fmt.Errorf("%w: planID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
