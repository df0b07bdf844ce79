package generate_slots

import (
	"context"

	generateSlots "github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
)

type GenerateSlotsUseCase interface {
	Execute(ctx context.Context, providerID string, regenerate bool) (*generateSlots.Response, error)
	ExecuteAll(ctx context.Context, regenerate bool) (*generateSlots.BulkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
