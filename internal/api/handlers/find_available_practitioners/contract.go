package find_available_practitioners

import (
	"context"

	findAvailable "github.com/m04kA/PKC-SchedulerService/internal/usecase/find_available"
)

type FindAvailableUseCase interface {
	Execute(ctx context.Context, req findAvailable.Request) (*findAvailable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
