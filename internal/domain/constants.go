package domain

import (
	"strings"
	"time"
)

// Default scheduling values
const (
	// DefaultSlotDurationMinutes is the fixed slot granularity for the whole clinic
	DefaultSlotDurationMinutes = 30

	// DefaultDayStart / DefaultDayEnd form the conventional working window.
	// Used as the fallback when a provider has no configured hours and as the
	// span of leave placeholder slots on non-working days.
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "17:00"
)

// Treatment plan validation constants
const (
	MinSessionsPerPlan = 1
	MaxSessionsPerPlan = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday names in schedule order, lowercase as stored in slot rows and
// provider leave-day lists
var WeekdayNames = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayName returns the lowercase weekday name for a date
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// ActiveAppointmentStatuses are the appointment statuses that occupy a
// provider's time. Used when counting conflicts.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
}
