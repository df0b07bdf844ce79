package generate_slots

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.Slot) error
	DeleteByProvider(ctx context.Context, providerID string) error
	CountByProvider(ctx context.Context, providerID string) (int, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetPractitioner(ctx context.Context, practitionerID string) (*staffservice.Practitioner, error)
	ListPractitioners(ctx context.Context) ([]staffservice.Practitioner, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
