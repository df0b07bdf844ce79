package staffservice

import (
	"fmt"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// Practitioner модель врача из StaffService
type Practitioner struct {
	PractitionerID  string              `json:"practitioner_id"`
	FirstName       string              `json:"first_name"`
	LastName        string              `json:"last_name"`
	Specializations []string            `json:"specializations"`
	WorkingHours    domain.WeekSchedule `json:"working_hours"`
	LeaveDays       []string            `json:"leave_days"`
}

// FullName возвращает отображаемое имя врача
func (p *Practitioner) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// Therapist модель терапевта из StaffService
// StartTime/EndTime — рабочее окно в формате HH:MM; nil означает,
// что применяется окно по умолчанию 09:00-17:00
type Therapist struct {
	TherapistID string   `json:"therapist_id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	LeaveDays   []string `json:"leave_days"`
}

// FullName возвращает отображаемое имя терапевта
func (t *Therapist) FullName() string {
	return fmt.Sprintf("%s %s", t.FirstName, t.LastName)
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
