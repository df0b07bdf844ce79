package inventoryservice

import "errors"

var (
	// ErrTherapyNotFound возвращается, когда терапия не найдена
	ErrTherapyNotFound = errors.New("therapy not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("inventoryservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("inventoryservice client: invalid response")
)
