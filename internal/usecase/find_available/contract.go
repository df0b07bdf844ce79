package find_available

import (
	"context"
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	CountActiveAt(ctx context.Context, practitionerID string, date time.Time, timePrefix string) (int, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	ListPractitioners(ctx context.Context) ([]staffservice.Practitioner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
