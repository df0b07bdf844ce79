package plans

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// TreatmentRepository интерфейс репозитория планов лечения
type TreatmentRepository interface {
	GetPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error)
	GetPlansByPatient(ctx context.Context, patientID string) ([]*domain.TreatmentPlan, error)
	GetSessionsByPlan(ctx context.Context, planID string) ([]*domain.TreatmentSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
