package get_treatment_plan

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/service/plans/models"
)

type PlansService interface {
	GetByID(ctx context.Context, planID string) (*models.PlanWithSessionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
