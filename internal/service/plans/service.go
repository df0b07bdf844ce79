package plans

import (
	"context"
	"errors"
	"fmt"

	treatmentRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/treatment"
	"github.com/m04kA/PKC-SchedulerService/internal/service/plans/models"
)

// Service сервис для чтения планов лечения
type Service struct {
	treatmentRepo TreatmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса планов лечения
func NewService(treatmentRepo TreatmentRepository, logger Logger) *Service {
	return &Service{
		treatmentRepo: treatmentRepo,
		logger:        logger,
	}
}

// GetByID получает план лечения вместе со всеми его сеансами
func (s *Service) GetByID(ctx context.Context, planID string) (*models.PlanWithSessionsResponse, error) {
	s.logger.Info("GetByID: fetching treatment plan id=%s", planID)

	if planID == "" {
		return nil, fmt.Errorf("%w: plan id is required", ErrInvalidInput)
	}

	plan, err := s.treatmentRepo.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, treatmentRepo.ErrPlanNotFound) {
			s.logger.Warn("GetByID: treatment plan id=%s not found", planID)
			return nil, ErrPlanNotFound
		}
		s.logger.Error("GetByID: repository error for plan id=%s: %v", planID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	sessions, err := s.treatmentRepo.GetSessionsByPlan(ctx, planID)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch sessions for plan id=%s: %v", planID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched plan id=%s with %d sessions", planID, len(sessions))
	return models.FromDomainPlanWithSessions(plan, sessions), nil
}

// GetByPatient получает все планы лечения пациента, новые первыми
func (s *Service) GetByPatient(ctx context.Context, patientID string) (*models.PlanListResponse, error) {
	s.logger.Info("GetByPatient: fetching treatment plans for patient=%s", patientID)

	if patientID == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}

	plansList, err := s.treatmentRepo.GetPlansByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("GetByPatient: repository error for patient=%s: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetByPatient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPatient: successfully fetched %d plans for patient=%s", len(plansList), patientID)
	return models.FromDomainPlanList(plansList), nil
}
