package domain

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// PlanStatus represents the lifecycle state of a treatment plan
type PlanStatus string

const (
	PlanStatusPlanned   PlanStatus = "planned"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
)

// SessionStatus represents the lifecycle state of a treatment session
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// TreatmentPlan is an ordered program of sessions for one patient under one
// practitioner. EndDate is derived: the date of the last scheduled session.
type TreatmentPlan struct {
	TreatmentPlanID string
	PatientID       string
	PractitionerID  string
	TreatmentName   string
	TreatmentType   string
	StartDate       time.Time
	EndDate         time.Time
	TotalSessions   int
	TotalCost       float64
	Status          PlanStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TreatmentSession is one scheduled 30-minute occurrence of a treatment
// plan, pinned to a specific therapist, date and slot.
type TreatmentSession struct {
	SessionID           string
	TreatmentPlanID     string
	SessionNumber       int // 1-based, sequential within the plan
	SessionDate         time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	TherapistID         string
	StaffID             string // rotated assignment
	ProceduresPerformed []string
	DurationMinutes     int
	Status              SessionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the session no longer occupies its slot
func (s *TreatmentSession) IsCancelled() bool {
	return s.Status == SessionStatusCancelled
}
