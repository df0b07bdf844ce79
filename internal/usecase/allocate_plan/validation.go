package allocate_plan

import (
	"fmt"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req Request) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patient_id is required", ErrInvalidData)
	}
	if req.PractitionerID == "" {
		return fmt.Errorf("%w: practitioner_id is required", ErrInvalidData)
	}
	if req.TherapyID <= 0 {
		return fmt.Errorf("%w: therapy_id must be positive", ErrInvalidData)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidData)
	}
	if req.NumSessions < domain.MinSessionsPerPlan || req.NumSessions > domain.MaxSessionsPerPlan {
		return fmt.Errorf("%w: num_sessions must be between %d and %d",
			ErrInvalidData, domain.MinSessionsPerPlan, domain.MaxSessionsPerPlan)
	}
	if _, err := domain.ParseFrequency(string(req.Frequency)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}
