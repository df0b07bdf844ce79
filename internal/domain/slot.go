package domain

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// SlotStatus represents the state of a materialized slot
type SlotStatus string

const (
	SlotStatusFree   SlotStatus = "free"
	SlotStatusBooked SlotStatus = "booked"
	SlotStatusLeave  SlotStatus = "leave"
)

// ValidSlotStatus reports whether s is one of the known slot statuses
func ValidSlotStatus(s string) bool {
	switch SlotStatus(s) {
	case SlotStatusFree, SlotStatusBooked, SlotStatusLeave:
		return true
	default:
		return false
	}
}

// Slot represents one discrete bookable interval for one provider on one
// weekday. Times are immutable once the slot is created; only the status
// changes over its lifetime.
type Slot struct {
	SlotID     string
	ProviderID string
	Day        string // lowercase weekday name
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     SlotStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the slot can currently be booked
func (s *Slot) IsFree() bool {
	return s.Status == SlotStatusFree
}

// IsLeave returns true if the slot is a leave placeholder
func (s *Slot) IsLeave() bool {
	return s.Status == SlotStatusLeave
}
