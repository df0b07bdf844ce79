package allocate_plan

import (
	"context"
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/inventoryservice"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// TreatmentRepository интерфейс репозитория планов лечения
type TreatmentRepository interface {
	CreatePlan(ctx context.Context, plan *domain.TreatmentPlan) (*domain.TreatmentPlan, error)
	CreateSession(ctx context.Context, session *domain.TreatmentSession) (*domain.TreatmentSession, error)
	CountSessionsAt(ctx context.Context, therapistID string, date time.Time, startTime types.TimeString) (int, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	ListTherapists(ctx context.Context) ([]staffservice.Therapist, error)
}

// InventoryServiceClient интерфейс клиента для InventoryService
type InventoryServiceClient interface {
	GetTherapy(ctx context.Context, therapyID int64) (*inventoryservice.Therapy, error)
	GetRequiredItems(ctx context.Context, therapyID int64) ([]inventoryservice.RequiredItem, error)
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
