package domain

import (
	"strings"
	"time"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// DaySchedule is one weekday entry of a provider's working-hours calendar
type DaySchedule struct {
	Day       string           `json:"day"`
	IsWorking bool             `json:"isWorking"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// WeekSchedule is a provider's full working-hours calendar, one entry per
// weekday in Monday..Sunday order
type WeekSchedule []DaySchedule

// DefaultWeekSchedule returns the canonical default calendar: Monday to
// Friday 09:00-17:00 working, Saturday and Sunday off. This is the single
// fallback applied everywhere a provider has no configured hours.
func DefaultWeekSchedule() WeekSchedule {
	schedule := make(WeekSchedule, 0, len(WeekdayNames))
	for _, day := range WeekdayNames {
		working := day != "saturday" && day != "sunday"
		schedule = append(schedule, DaySchedule{
			Day:       day,
			IsWorking: working,
			StartTime: types.TimeString(DefaultDayStart),
			EndTime:   types.TimeString(DefaultDayEnd),
		})
	}
	return schedule
}

// ScheduleFor returns the entry for the given lowercase weekday name.
// Unknown days resolve to a non-working entry.
func (ws WeekSchedule) ScheduleFor(day string) DaySchedule {
	day = strings.ToLower(day)
	for _, entry := range ws {
		if entry.Day == day {
			return entry
		}
	}
	return DaySchedule{Day: day, IsWorking: false}
}

// ScheduleForDate returns the entry for the weekday of the given date
func (ws WeekSchedule) ScheduleForDate(date time.Time) DaySchedule {
	return ws.ScheduleFor(WeekdayName(date))
}

// IsLeaveDay reports whether the lowercase weekday name appears in the
// provider's leave-day list. Leave days dominate the weekly calendar: a
// nominally working weekday that is also a leave day is fully unavailable.
func IsLeaveDay(leaveDays []string, day string) bool {
	day = strings.ToLower(day)
	for _, leave := range leaveDays {
		if strings.ToLower(leave) == day {
			return true
		}
	}
	return false
}
