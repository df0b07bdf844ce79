package appointments

import (
	"context"
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	GetByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error)
	CountActiveAt(ctx context.Context, practitionerID string, date time.Time, timePrefix string) (int, error)
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
