package treatment

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план лечения не найден
	ErrPlanNotFound = errors.New("treatment.repository: treatment plan not found")

	// ErrSessionSlotTaken возвращается, когда конкурентная запись уже заняла
	// слот терапевта (уникальный индекс по therapist_id, session_date, start_time)
	ErrSessionSlotTaken = errors.New("treatment.repository: therapist slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("treatment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("treatment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("treatment.repository: failed to scan row")
)
