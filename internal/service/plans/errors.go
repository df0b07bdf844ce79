package plans

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план лечения не найден
	ErrPlanNotFound = errors.New("treatment plan not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
