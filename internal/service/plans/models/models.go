package models

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// SessionResponse один сеанс плана лечения
type SessionResponse struct {
	SessionID           string   `json:"sessionId"`
	SessionNumber       int      `json:"sessionNumber"`
	SessionDate         string   `json:"sessionDate"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	TherapistID         string   `json:"therapistId"`
	StaffID             string   `json:"staffId"`
	ProceduresPerformed []string `json:"proceduresPerformed"`
	DurationMinutes     int      `json:"durationMinutes"`
	Status              string   `json:"status"`
}

// PlanResponse план лечения
type PlanResponse struct {
	TreatmentPlanID string    `json:"treatmentPlanId"`
	PatientID       string    `json:"patientId"`
	PractitionerID  string    `json:"practitionerId"`
	TreatmentName   string    `json:"treatmentName"`
	TreatmentType   string    `json:"treatmentType"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	TotalSessions   int       `json:"totalSessions"`
	TotalCost       float64   `json:"totalCost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PlanWithSessionsResponse план лечения вместе с его сеансами
type PlanWithSessionsResponse struct {
	PlanResponse
	Sessions []SessionResponse `json:"sessions"`
}

// PlanListResponse список планов лечения пациента
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}

// Converters

// FromDomainPlan конвертирует domain.TreatmentPlan в PlanResponse
func FromDomainPlan(plan *domain.TreatmentPlan) *PlanResponse {
	return &PlanResponse{
		TreatmentPlanID: plan.TreatmentPlanID,
		PatientID:       plan.PatientID,
		PractitionerID:  plan.PractitionerID,
		TreatmentName:   plan.TreatmentName,
		TreatmentType:   plan.TreatmentType,
		StartDate:       plan.StartDate.Format(domain.DateFormat),
		EndDate:         plan.EndDate.Format(domain.DateFormat),
		TotalSessions:   plan.TotalSessions,
		TotalCost:       plan.TotalCost,
		Status:          string(plan.Status),
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}

// FromDomainSession конвертирует domain.TreatmentSession в SessionResponse
func FromDomainSession(session *domain.TreatmentSession) *SessionResponse {
	procedures := session.ProceduresPerformed
	if procedures == nil {
		procedures = []string{}
	}
	return &SessionResponse{
		SessionID:           session.SessionID,
		SessionNumber:       session.SessionNumber,
		SessionDate:         session.SessionDate.Format(domain.DateFormat),
		StartTime:           session.StartTime.String(),
		EndTime:             session.EndTime.String(),
		TherapistID:         session.TherapistID,
		StaffID:             session.StaffID,
		ProceduresPerformed: procedures,
		DurationMinutes:     session.DurationMinutes,
		Status:              string(session.Status),
	}
}

// FromDomainPlanWithSessions собирает план вместе со списком сеансов
func FromDomainPlanWithSessions(plan *domain.TreatmentPlan, sessions []*domain.TreatmentSession) *PlanWithSessionsResponse {
	resp := &PlanWithSessionsResponse{
		PlanResponse: *FromDomainPlan(plan),
		Sessions:     make([]SessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, *FromDomainSession(session))
	}
	return resp
}

// FromDomainPlanList конвертирует список планов в PlanListResponse
func FromDomainPlanList(plansList []*domain.TreatmentPlan) *PlanListResponse {
	resp := &PlanListResponse{
		Plans: make([]PlanResponse, 0, len(plansList)),
		Total: len(plansList),
	}
	for _, plan := range plansList {
		resp.Plans = append(resp.Plans, *FromDomainPlan(plan))
	}
	return resp
}
