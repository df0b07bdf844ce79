package find_available

import (
	"context"
	"fmt"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// UseCase поиск врачей, свободных на заданные дату и время
type UseCase struct {
	appointments AppointmentRepository
	staff        StaffServiceClient
	logger       Logger
}

func NewUseCase(appointments AppointmentRepository, staff StaffServiceClient, logger Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		staff:        staff,
		logger:       logger,
	}
}

// Execute возвращает врачей без активных записей на запрошенное время.
// Сравнение времени выполняется по префиксу HH:MM, поэтому запись на
// 10:00:00 закрывает запрос на 10:00.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidData)
	}
	timeOfDay, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidData)
	}

	practitioners, err := uc.staff.ListPractitioners(ctx)
	if err != nil {
		uc.logger.Error("find_available: failed to list practitioners: %v", err)
		return nil, fmt.Errorf("%w: list practitioners: %v", ErrInternal, err)
	}

	resp := &Response{Date: req.Date, Time: timeOfDay.String()}
	for _, p := range practitioners {
		count, err := uc.appointments.CountActiveAt(ctx, p.PractitionerID, req.Date, timeOfDay.String())
		if err != nil {
			uc.logger.Error("find_available: failed to count appointments for %s: %v", p.PractitionerID, err)
			return nil, fmt.Errorf("%w: count appointments: %v", ErrInternal, err)
		}
		if count > 0 {
			continue
		}
		resp.Practitioners = append(resp.Practitioners, AvailablePractitioner{
			PractitionerID:  p.PractitionerID,
			FullName:        p.FullName(),
			Specializations: p.Specializations,
		})
	}
	return resp, nil
}
