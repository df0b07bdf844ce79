package slots

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/slot"
	"github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByProvider(ctx context.Context, filter slotRepo.SlotsFilter) ([]*domain.Slot, error)
	GetByID(ctx context.Context, slotID string) (*domain.Slot, error)
	UpdateStatus(ctx context.Context, slotID string, status domain.SlotStatus) error
}

// SlotGenerator интерфейс генератора сеток слотов
type SlotGenerator interface {
	Execute(ctx context.Context, providerID string, regenerate bool) (*generate_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
