package allocate_plan

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/internal/integrations/staffservice"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// pick выбранная пара терапевт + временной интервал для сеанса
type pick struct {
	TherapistID string
	Start       types.TimeString
	End         types.TimeString
}

// occupancyChecker возвращает число сеансов терапевта на указанную дату и время
type occupancyChecker func(ctx context.Context, therapistID string, date time.Time, start types.TimeString) (int, error)

// SlotPicker стратегия подбора терапевта и слота для сеанса на заданную дату
type SlotPicker interface {
	Pick(ctx context.Context, date time.Time, therapists []staffservice.Therapist, occupied occupancyChecker) (*pick, error)
}

// FirstFitPicker выбирает первый незанятый слот, перебирая терапевтов по порядку.
//
// Для каждого терапевта рабочее окно нарезается на интервалы по 30 минут,
// дни отпуска пропускаются целиком. Возвращает nil, если ни у одного
// терапевта не нашлось свободного интервала.
type FirstFitPicker struct{}

func (FirstFitPicker) Pick(ctx context.Context, date time.Time, therapists []staffservice.Therapist, occupied occupancyChecker) (*pick, error) {
	day := domain.WeekdayName(date)

	for _, t := range therapists {
		if domain.IsLeaveDay(t.LeaveDays, day) {
			continue
		}

		start, end, err := workingWindow(t)
		if err != nil {
			return nil, err
		}

		for _, slot := range domain.GenerateTimeSlots(start, end, domain.DefaultSlotDurationMinutes) {
			count, err := occupied(ctx, t.TherapistID, date, slot.Start)
			if err != nil {
				return nil, fmt.Errorf("check occupancy for therapist %s on %s %s: %w",
					t.TherapistID, day, slot.Start, err)
			}
			if count == 0 {
				return &pick{TherapistID: t.TherapistID, Start: slot.Start, End: slot.End}, nil
			}
		}
	}

	return nil, nil
}

// workingWindow возвращает рабочее окно терапевта, либо окно по умолчанию,
// если индивидуальный график не задан.
func workingWindow(t staffservice.Therapist) (types.TimeString, types.TimeString, error) {
	start := types.TimeString(domain.DefaultDayStart)
	end := types.TimeString(domain.DefaultDayEnd)

	if t.StartTime != nil && *t.StartTime != "" {
		s, err := types.NewTimeStringFromString(*t.StartTime)
		if err != nil {
			return "", "", fmt.Errorf("therapist %s start_time: %w", t.TherapistID, err)
		}
		start = s
	}
	if t.EndTime != nil && *t.EndTime != "" {
		e, err := types.NewTimeStringFromString(*t.EndTime)
		if err != nil {
			return "", "", fmt.Errorf("therapist %s end_time: %w", t.TherapistID, err)
		}
		end = e
	}

	return start, end, nil
}
