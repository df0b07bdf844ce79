package allocate_plan

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidData невалидные данные запроса
	ErrInvalidData = errors.New("invalid request data")

	// ErrTherapyNotFound терапия не найдена в InventoryService
	ErrTherapyNotFound = errors.New("therapy not found")

	// ErrNoStaffAvailable нет ни одного терапевта для назначения сеансов
	ErrNoStaffAvailable = errors.New("no staff available for session assignment")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)

// StockShortfall нехватка конкретного расходного материала
type StockShortfall struct {
	Name      string
	Category  string
	Required  int
	Available int
}

// InsufficientStockError ошибка: на складе недостаточно материалов для терапии
type InsufficientStockError struct {
	Items []StockShortfall
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Items))
}

// NoSlotAvailableError ошибка: для одного из сеансов не нашлось свободного слота
type NoSlotAvailableError struct {
	SessionNumber int
	Date          time.Time
}

func (e *NoSlotAvailableError) Error() string {
	return fmt.Sprintf("no available slot for session %d on %s", e.SessionNumber, e.Date.Format("2006-01-02"))
}
