package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	appointmentRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/appointment"
	"github.com/m04kA/PKC-SchedulerService/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей на приём
func NewService(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает запись на приём. Проверка занятости врача и вставка
// выполняются в одной serializable-транзакции; уникальный индекс в БД
// страхует от гонки двух конкурирующих записей.
func (s *Service) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Create: creating appointment for patient=%s, practitioner=%s, date=%s %s",
		req.PatientID, req.PractitionerID, req.AppointmentDate, req.StartTime)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request for patient=%s: %v", req.PatientID, err)
		return nil, err
	}

	appointment, err := req.ToDomainAppointment()
	if err != nil {
		s.logger.Warn("Create: failed to parse request for patient=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	appointment.AppointmentID = uuid.NewString()

	var created *domain.Appointment
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := s.appointmentRepo.CountActiveAt(txCtx,
			appointment.PractitionerID, appointment.AppointmentDate, appointment.StartTime.String())
		if err != nil {
			return fmt.Errorf("count active appointments: %w", err)
		}
		if count > 0 {
			return ErrTimeConflict
		}

		created, err = s.appointmentRepo.Create(txCtx, appointment)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrTimeConflict) || errors.Is(err, appointmentRepo.ErrTimeConflict) {
			s.logger.Warn("Create: time conflict for practitioner=%s at %s %s",
				req.PractitionerID, req.AppointmentDate, req.StartTime)
			return nil, ErrTimeConflict
		}
		s.logger.Error("Create: transaction failed for patient=%s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created appointment id=%s", created.AppointmentID)
	return models.FromDomainAppointment(created), nil
}

// GetByID получает запись на приём по ID
func (s *Service) GetByID(ctx context.Context, appointmentID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", appointmentID)

	if appointmentID == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", appointmentID)
	return models.FromDomainAppointment(appointment), nil
}

// GetByPatient получает все записи пациента на приём
func (s *Service) GetByPatient(ctx context.Context, patientID string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByPatient: fetching appointments for patient=%s", patientID)

	if patientID == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("GetByPatient: repository error for patient=%s: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetByPatient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPatient: fetched %d appointments for patient=%s", len(appointments), patientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// validateCreateRequest проверяет обязательные поля запроса
func validateCreateRequest(req *models.CreateAppointmentRequest) error {
	if req.PatientID == "" {
		return fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}
	if req.PractitionerID == "" {
		return fmt.Errorf("%w: practitioner id is required", ErrInvalidInput)
	}
	if req.AppointmentDate == "" {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}
	if req.StartTime == "" || req.EndTime == "" {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	if req.ServiceType == "" {
		return fmt.Errorf("%w: service type is required", ErrInvalidInput)
	}
	return nil
}

