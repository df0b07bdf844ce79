package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/PKC-SchedulerService/internal/infra/storage/slot"
	"github.com/m04kA/PKC-SchedulerService/internal/service/slots/models"
)

// Service сервис для работы с сеткой слотов специалистов
type Service struct {
	slotRepo  SlotRepository
	generator SlotGenerator
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, generator SlotGenerator, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		generator: generator,
		logger:    logger,
	}
}

// List возвращает сетку слотов специалиста с фильтрацией по дню и статусу.
// Если при запросе конкретного дня сетка пуста, сетка генерируется лениво
// по рабочему графику специалиста и выборка повторяется.
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots for provider=%s, day=%v", req.ProviderID, req.Day)

	filter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	found, err := s.slotRepo.GetByProvider(ctx, *filter)
	if err != nil {
		s.logger.Error("List: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Ленивая генерация: пустая выборка по дню означает, что сетка ещё
	// не создавалась
	if len(found) == 0 && req.Day != nil {
		s.logger.Info("List: no slots for provider=%s, generating schedule", req.ProviderID)

		if _, err := s.generator.Execute(ctx, req.ProviderID, false); err != nil {
			// Генерация не должна ломать чтение: отдаем пустой список
			s.logger.Warn("List: lazy generation failed for provider=%s: %v", req.ProviderID, err)
			return models.FromDomainSlotList(found), nil
		}

		found, err = s.slotRepo.GetByProvider(ctx, *filter)
		if err != nil {
			s.logger.Error("List: repository error after generation for provider=%s: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("List: successfully fetched %d slots for provider=%s", len(found), req.ProviderID)
	return models.FromDomainSlotList(found), nil
}

// SetStatus обновляет статус слота (booked / free / leave)
func (s *Service) SetStatus(ctx context.Context, slotID string, req *models.UpdateSlotStatusRequest) (*models.SlotResponse, error) {
	s.logger.Info("SetStatus: updating slot=%s to status=%s", slotID, req.Status)

	if slotID == "" {
		return nil, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	status := strings.ToLower(req.Status)
	if !domain.ValidSlotStatus(status) {
		s.logger.Warn("SetStatus: invalid status=%s for slot=%s", req.Status, slotID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.slotRepo.UpdateStatus(ctx, slotID, domain.SlotStatus(status)); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetStatus: slot=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetStatus: repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		s.logger.Error("SetStatus: failed to reload slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: successfully updated slot=%s to status=%s", slotID, status)
	return models.FromDomainSlot(updated), nil
}

// buildFilter валидирует запрос и собирает фильтр для репозитория
func (s *Service) buildFilter(req *models.ListSlotsRequest) (*slotRepo.SlotsFilter, error) {
	if req.ProviderID == "" {
		return nil, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}

	filter := &slotRepo.SlotsFilter{ProviderID: req.ProviderID}

	if req.Day != nil {
		day := strings.ToLower(*req.Day)
		valid := false
		for _, name := range domain.WeekdayNames {
			if name == day {
				valid = true
				break
			}
		}
		if !valid {
			s.logger.Warn("List: invalid day=%s for provider=%s", *req.Day, req.ProviderID)
			return nil, fmt.Errorf("%w: invalid day", ErrInvalidInput)
		}
		filter.Day = &day
	}

	if req.Status != nil {
		status := strings.ToLower(*req.Status)
		if !domain.ValidSlotStatus(status) {
			s.logger.Warn("List: invalid status=%s for provider=%s", *req.Status, req.ProviderID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus := domain.SlotStatus(status)
		filter.Status = &domainStatus
	}

	return filter, nil
}
