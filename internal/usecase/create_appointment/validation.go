package create_appointment

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/consultly/booking-service/internal/domain"
)

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

	if strings.TrimSpace(req.SlotLabel) == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if err := validatePhoneNumber(req.PhoneNumber); err != nil {
		return err
	}

	if req.Details != nil && len(*req.Details) > domain.MaxDetailsLength {
		return fmt.Errorf("%w: details must not exceed %d characters", ErrInvalidInput, domain.MaxDetailsLength)
	}

	return nil
}

// validateEmail проверяет минимальную структуру адреса: local@domain с точкой в домене
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	host := email[at+1:]
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}

// validatePhoneNumber проверяет, что номер состоит ровно из 10 цифр
// Разделители (пробелы, дефисы, скобки) допускаются и игнорируются
func validatePhoneNumber(phone string) error {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// разделители игнорируем
		default:
			return fmt.Errorf("%w: phone number contains invalid characters", ErrInvalidInput)
		}
	}

	if digits != domain.PhoneNumberDigits {
		return fmt.Errorf("%w: phone number must contain exactly %d digits", ErrInvalidInput, domain.PhoneNumberDigits)
	}

	return nil
}

// normalizePhoneNumber оставляет в номере только цифры
func normalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
