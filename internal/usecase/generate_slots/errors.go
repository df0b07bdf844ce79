package generate_slots

import "errors"

var (
	// ErrInvalidData невалидные данные запроса
	ErrInvalidData = errors.New("invalid request data")

	// ErrPractitionerNotFound специалист не найден в StaffService
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
