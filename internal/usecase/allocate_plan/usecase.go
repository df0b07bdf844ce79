package allocate_plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/inventoryservice"
)

// UseCase создание плана лечения: проверка склада, подбор терапевтов и слотов,
// транзакционное сохранение плана и всех сеансов
type UseCase struct {
	treatments TreatmentRepository
	staff      StaffServiceClient
	inventory  InventoryServiceClient
	txManager  TransactionManager
	picker     SlotPicker
	logger     Logger
}

func NewUseCase(
	treatments TreatmentRepository,
	staff StaffServiceClient,
	inventory InventoryServiceClient,
	txManager TransactionManager,
	picker SlotPicker,
	logger Logger,
) *UseCase {
	return &UseCase{
		treatments: treatments,
		staff:      staff,
		inventory:  inventory,
		txManager:  txManager,
		picker:     picker,
		logger:     logger,
	}
}

// Execute распределяет запрошенное число сеансов по датам, терапевтам и
// временным интервалам и сохраняет план целиком. Либо создаётся весь план
// со всеми сеансами, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	therapy, err := uc.inventory.GetTherapy(ctx, req.TherapyID)
	if err != nil {
		if errors.Is(err, inventoryservice.ErrTherapyNotFound) {
			return nil, fmt.Errorf("%w: therapy %d", ErrTherapyNotFound, req.TherapyID)
		}
		uc.logger.Error("allocate_plan: failed to fetch therapy %d: %v", req.TherapyID, err)
		return nil, fmt.Errorf("%w: fetch therapy: %v", ErrInternal, err)
	}

	items, err := uc.inventory.GetRequiredItems(ctx, req.TherapyID)
	if err != nil {
		uc.logger.Error("allocate_plan: failed to fetch required items for therapy %d: %v", req.TherapyID, err)
		return nil, fmt.Errorf("%w: fetch required items: %v", ErrInternal, err)
	}

	if shortfalls := stockShortfalls(items); len(shortfalls) > 0 {
		return nil, &InsufficientStockError{Items: shortfalls}
	}

	staffPool := staffPoolFromStock(items)
	if len(staffPool) == 0 {
		return nil, ErrNoStaffAvailable
	}

	therapists, err := uc.staff.ListTherapists(ctx)
	if err != nil {
		uc.logger.Error("allocate_plan: failed to list therapists: %v", err)
		return nil, fmt.Errorf("%w: list therapists: %v", ErrInternal, err)
	}
	if len(therapists) == 0 {
		return nil, ErrNoStaffAvailable
	}

	dates, err := domain.SessionDates(req.StartDate, req.NumSessions, req.Frequency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	therapistNames := make(map[string]string, len(therapists))
	for _, t := range therapists {
		therapistNames[t.TherapistID] = t.FullName()
	}

	plan := &domain.TreatmentPlan{
		TreatmentPlanID: uuid.NewString(),
		PatientID:       req.PatientID,
		PractitionerID:  req.PractitionerID,
		TreatmentName:   therapy.Name,
		TreatmentType:   therapy.Type,
		StartDate:       dates[0],
		EndDate:         dates[len(dates)-1],
		TotalSessions:   req.NumSessions,
		Status:          domain.PlanStatusPlanned,
	}

	var assigned []AssignedSession

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		assigned = assigned[:0]

		created, err := uc.treatments.CreatePlan(txCtx, plan)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}

		for i, date := range dates {
			p, err := uc.picker.Pick(txCtx, date, therapists, uc.treatments.CountSessionsAt)
			if err != nil {
				return fmt.Errorf("pick slot for session %d: %w", i+1, err)
			}
			if p == nil {
				return &NoSlotAvailableError{SessionNumber: i + 1, Date: date}
			}

			session := &domain.TreatmentSession{
				SessionID:           uuid.NewString(),
				TreatmentPlanID:     created.TreatmentPlanID,
				SessionNumber:       i + 1,
				SessionDate:         date,
				StartTime:           p.Start,
				EndTime:             p.End,
				TherapistID:         p.TherapistID,
				StaffID:             staffPool[i%len(staffPool)],
				ProceduresPerformed: []string{therapy.Name},
				DurationMinutes:     domain.DefaultSlotDurationMinutes,
				Status:              domain.SessionStatusScheduled,
			}

			if _, err := uc.treatments.CreateSession(txCtx, session); err != nil {
				return fmt.Errorf("create session %d: %w", i+1, err)
			}

			assigned = append(assigned, AssignedSession{
				SessionID:     session.SessionID,
				SessionNumber: session.SessionNumber,
				SessionDate:   session.SessionDate,
				StartTime:     session.StartTime,
				EndTime:       session.EndTime,
				TherapistID:   session.TherapistID,
				TherapistName: therapistNames[session.TherapistID],
				StaffID:       session.StaffID,
			})
		}

		return nil
	})
	if err != nil {
		var noSlot *NoSlotAvailableError
		if errors.As(err, &noSlot) {
			return nil, noSlot
		}
		uc.logger.Error("allocate_plan: transaction failed for patient %s: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("allocate_plan: created plan %s with %d sessions for patient %s",
		plan.TreatmentPlanID, len(assigned), req.PatientID)

	resp := &Response{
		TreatmentPlanID: plan.TreatmentPlanID,
		TreatmentName:   plan.TreatmentName,
		TotalSessions:   plan.TotalSessions,
		StartDate:       plan.StartDate,
		EndDate:         plan.EndDate,
		Sessions:        assigned,
	}
	for _, item := range items {
		resp.RequiredItems = append(resp.RequiredItems, RequiredItemInfo{
			Name:      item.Name,
			Category:  item.Category,
			Required:  item.Required,
			Available: item.Available,
		})
	}
	return resp, nil
}

// stockShortfalls возвращает список материалов, которых не хватает на складе
func stockShortfalls(items []inventoryservice.RequiredItem) []StockShortfall {
	var shortfalls []StockShortfall
	for _, item := range items {
		if !item.IsSufficient() {
			shortfalls = append(shortfalls, StockShortfall{
				Name:      item.Name,
				Category:  item.Category,
				Required:  item.Required,
				Available: item.Available,
			})
		}
	}
	return shortfalls
}

// staffPoolFromStock собирает пул сотрудников из поля updated_by складских
// записей: уникальные значения в порядке появления. Сеансы распределяются
// между ними по кругу.
func staffPoolFromStock(items []inventoryservice.RequiredItem) []string {
	seen := make(map[string]struct{})
	var pool []string
	for _, item := range items {
		if item.UpdatedBy == nil || *item.UpdatedBy == "" {
			continue
		}
		if _, ok := seen[*item.UpdatedBy]; ok {
			continue
		}
		seen[*item.UpdatedBy] = struct{}{}
		pool = append(pool, *item.UpdatedBy)
	}
	return pool
}
