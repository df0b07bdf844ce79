package get_patient_treatment_plans

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/service/plans/models"
)

type PlansService interface {
	GetByPatient(ctx context.Context, patientID string) (*models.PlanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
