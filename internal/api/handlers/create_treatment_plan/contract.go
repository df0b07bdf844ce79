package create_treatment_plan

import (
	"context"

	allocatePlan "github.com/m04kA/PKC-SchedulerService/internal/usecase/allocate_plan"
)

type AllocatePlanUseCase interface {
	Execute(ctx context.Context, req allocatePlan.Request) (*allocatePlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
