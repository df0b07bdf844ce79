package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// UseCase генерация недельной сетки слотов специалиста по его рабочему графику
type UseCase struct {
	slots     SlotRepository
	staff     StaffServiceClient
	txManager TransactionManager
	logger    Logger
}

func NewUseCase(slots SlotRepository, staff StaffServiceClient, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slots:     slots,
		staff:     staff,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute перегенерирует сетку слотов специалиста. При regenerate == false
// существующая сетка сохраняется как есть. При regenerate == true старые
// слоты удаляются и создаются заново: удаление и вставка выполняются
// в одной транзакции, чтобы сетка не оставалась пустой между ними.
func (uc *UseCase) Execute(ctx context.Context, providerID string, regenerate bool) (*Response, error) {
	if providerID == "" {
		return nil, fmt.Errorf("%w: provider_id is required", ErrInvalidData)
	}

	practitioner, err := uc.staff.GetPractitioner(ctx, providerID)
	if err != nil {
		if errors.Is(err, staffservice.ErrPractitionerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPractitionerNotFound, providerID)
		}
		uc.logger.Error("generate_slots: failed to fetch practitioner %s: %v", providerID, err)
		return nil, fmt.Errorf("%w: fetch practitioner: %v", ErrInternal, err)
	}

	newSlots := buildWeekSlots(practitioner)

	var skipped bool
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if !regenerate {
			count, err := uc.slots.CountByProvider(txCtx, providerID)
			if err != nil {
				return fmt.Errorf("count slots: %w", err)
			}
			if count > 0 {
				skipped = true
				return nil
			}
		}

		if err := uc.slots.DeleteByProvider(txCtx, providerID); err != nil {
			return fmt.Errorf("delete slots: %w", err)
		}
		if err := uc.slots.CreateBatch(txCtx, newSlots); err != nil {
			return fmt.Errorf("create slots: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("generate_slots: transaction failed for provider %s: %v", providerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if skipped {
		uc.logger.Info("generate_slots: provider %s already has slots, skipping", providerID)
		return &Response{ProviderID: providerID, Skipped: true}, nil
	}

	uc.logger.Info("generate_slots: created %d slots for provider %s", len(newSlots), providerID)
	return &Response{ProviderID: providerID, SlotsCreated: len(newSlots)}, nil
}

// ExecuteAll перегенерирует сетки слотов для всех специалистов. Ошибка по
// одному специалисту не прерывает обработку остальных.
func (uc *UseCase) ExecuteAll(ctx context.Context, regenerate bool) (*BulkResponse, error) {
	practitioners, err := uc.staff.ListPractitioners(ctx)
	if err != nil {
		uc.logger.Error("generate_slots: failed to list practitioners: %v", err)
		return nil, fmt.Errorf("%w: list practitioners: %v", ErrInternal, err)
	}

	result := &BulkResponse{}
	for _, p := range practitioners {
		resp, err := uc.Execute(ctx, p.PractitionerID, regenerate)
		if err != nil {
			uc.logger.Warn("generate_slots: skipping provider %s: %v", p.PractitionerID, err)
			continue
		}
		result.Providers = append(result.Providers, *resp)
		result.Total += resp.SlotsCreated
	}
	return result, nil
}

// buildWeekSlots строит полную недельную сетку специалиста. Рабочие дни
// нарезаются на свободные интервалы по 30 минут; нерабочие дни и дни
// отпуска получают интервалы-заглушки 09:00-17:00 со статусом leave.
func buildWeekSlots(p *staffservice.Practitioner) []*domain.Slot {
	schedule := p.WorkingHours
	if len(schedule) == 0 {
		schedule = domain.DefaultWeekSchedule()
	}

	var result []*domain.Slot
	for _, day := range domain.WeekdayNames {
		entry := schedule.ScheduleFor(day)

		working := entry.IsWorking && !domain.IsLeaveDay(p.LeaveDays, day)
		start, end := entry.StartTime, entry.EndTime
		status := domain.SlotStatusFree
		if !working {
			start = types.TimeString(domain.DefaultDayStart)
			end = types.TimeString(domain.DefaultDayEnd)
			status = domain.SlotStatusLeave
		}

		for _, slot := range domain.GenerateTimeSlots(start, end, domain.DefaultSlotDurationMinutes) {
			result = append(result, &domain.Slot{
				SlotID:     uuid.NewString(),
				ProviderID: p.PractitionerID,
				Day:        day,
				StartTime:  slot.Start,
				EndTime:    slot.End,
				Status:     status,
			})
		}
	}
	return result
}
