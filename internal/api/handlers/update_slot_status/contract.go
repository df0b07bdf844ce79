package update_slot_status

import (
	"context"

	"github.com/m04kA/PKC-SchedulerService/internal/service/slots/models"
)

type SlotsService interface {
	SetStatus(ctx context.Context, slotID string, req *models.UpdateSlotStatusRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
