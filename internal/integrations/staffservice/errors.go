package staffservice

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда врач не найден
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
