package create_treatment_plan

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	allocatePlan "github.com/m04kA/PKC-SchedulerService/internal/usecase/allocate_plan"
)

// CreateTreatmentPlanRequest запрос на создание плана лечения
type CreateTreatmentPlanRequest struct {
	PatientID      string `json:"patientId"`
	PractitionerID string `json:"practitionerId"`
	TherapyID      int64  `json:"therapyId"`
	StartDate      string `json:"startDate"` // Формат YYYY-MM-DD
	NumSessions    int    `json:"numSessions"`
	Frequency      string `json:"frequency"` // daily / weekly / biweekly / monthly
}

// SessionResponse назначенный сеанс
type SessionResponse struct {
	SessionID     string `json:"sessionId"`
	SessionNumber int    `json:"sessionNumber"`
	SessionDate   string `json:"sessionDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	TherapistID   string `json:"therapistId"`
	TherapistName string `json:"therapistName"`
	StaffID       string `json:"staffId"`
}

// RequiredItemResponse расходный материал терапии
type RequiredItemResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

// CreateTreatmentPlanResponse созданный план лечения
type CreateTreatmentPlanResponse struct {
	TreatmentPlanID string                 `json:"treatmentPlanId"`
	TreatmentName   string                 `json:"treatmentName"`
	TotalSessions   int                    `json:"totalSessions"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate"`
	Sessions        []SessionResponse      `json:"sessions"`
	RequiredItems   []RequiredItemResponse `json:"requiredItems"`
}

// InsufficientItemsResponse ответ при нехватке материалов на складе
type InsufficientItemsResponse struct {
	Error             string                 `json:"error"`
	InsufficientItems []RequiredItemResponse `json:"insufficientItems"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTreatmentPlanRequest) ToUseCaseRequest() (allocatePlan.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return allocatePlan.Request{}, err
	}
	return allocatePlan.Request{
		PatientID:      r.PatientID,
		PractitionerID: r.PractitionerID,
		TherapyID:      r.TherapyID,
		StartDate:      startDate,
		NumSessions:    r.NumSessions,
		Frequency:      domain.Frequency(r.Frequency),
	}, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP модель
func FromUseCaseResponse(resp *allocatePlan.Response) *CreateTreatmentPlanResponse {
	out := &CreateTreatmentPlanResponse{
		TreatmentPlanID: resp.TreatmentPlanID,
		TreatmentName:   resp.TreatmentName,
		TotalSessions:   resp.TotalSessions,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		Sessions:        make([]SessionResponse, 0, len(resp.Sessions)),
		RequiredItems:   make([]RequiredItemResponse, 0, len(resp.RequiredItems)),
	}
	for _, s := range resp.Sessions {
		out.Sessions = append(out.Sessions, SessionResponse{
			SessionID:     s.SessionID,
			SessionNumber: s.SessionNumber,
			SessionDate:   s.SessionDate.Format(domain.DateFormat),
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			TherapistID:   s.TherapistID,
			TherapistName: s.TherapistName,
			StaffID:       s.StaffID,
		})
	}
	for _, item := range resp.RequiredItems {
		out.RequiredItems = append(out.RequiredItems, RequiredItemResponse{
			Name:      item.Name,
			Category:  item.Category,
			Required:  item.Required,
			Available: item.Available,
		})
	}
	return out
}

// FromStockShortfalls собирает ответ с перечнем недостающих материалов
func FromStockShortfalls(message string, items []allocatePlan.StockShortfall) *InsufficientItemsResponse {
	out := &InsufficientItemsResponse{
		Error:             message,
		InsufficientItems: make([]RequiredItemResponse, 0, len(items)),
	}
	for _, item := range items {
		out.InsufficientItems = append(out.InsufficientItems, RequiredItemResponse{
			Name:      item.Name,
			Category:  item.Category,
			Required:  item.Required,
			Available: item.Available,
		})
	}
	return out
}
