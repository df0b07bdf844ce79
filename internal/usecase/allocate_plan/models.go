package allocate_plan

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// Request запрос на создание плана лечения с автоматическим распределением сеансов
type Request struct {
	PatientID      string
	PractitionerID string
	TherapyID      int64
	StartDate      time.Time
	NumSessions    int
	Frequency      domain.Frequency
}

// AssignedSession назначенный сеанс в составе плана
type AssignedSession struct {
	SessionID     string
	SessionNumber int
	SessionDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	TherapistID   string
	TherapistName string
	StaffID       string
}

// RequiredItemInfo сведения о расходном материале, необходимом для терапии
type RequiredItemInfo struct {
	Name      string
	Category  string
	Required  int
	Available int
}

// Response результат распределения: созданный план и его сеансы
type Response struct {
	TreatmentPlanID string
	TreatmentName   string
	TotalSessions   int
	StartDate       time.Time
	EndDate         time.Time
	Sessions        []AssignedSession
	RequiredItems   []RequiredItemInfo
}
