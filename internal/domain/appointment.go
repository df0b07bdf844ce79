package domain

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// AppointmentStatus represents the status of an ad hoc appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a single ad hoc booking of a practitioner (and optionally a
// therapist), distinct from the multi-session treatment-plan flow. It
// competes with treatment sessions for provider time.
type Appointment struct {
	AppointmentID       string
	PatientID           string
	PractitionerID      string
	TherapistID         *string
	AppointmentDate     time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	ServiceType         string
	ConsultationType    string
	SpecialInstructions *string
	PreparationNotes    *string
	Status              AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time window
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
}
