package find_available

import "errors"

var (
	// ErrInvalidData невалидные данные запроса
	ErrInvalidData = errors.New("invalid request data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)
