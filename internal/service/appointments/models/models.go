package models

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
	"github.com/m04kA/PKC-SchedulerService/pkg/types"
)

// Request модели

// CreateAppointmentRequest запрос на создание записи на приём
type CreateAppointmentRequest struct {
	PatientID           string  `json:"patientId"`
	PractitionerID      string  `json:"practitionerId"`
	TherapistID         *string `json:"therapistId,omitempty"`
	AppointmentDate     string  `json:"appointmentDate"` // Формат YYYY-MM-DD
	StartTime           string  `json:"startTime"`       // Формат HH:MM
	EndTime             string  `json:"endTime"`         // Формат HH:MM
	ServiceType         string  `json:"serviceType"`
	ConsultationType    string  `json:"consultationType"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	PreparationNotes    *string `json:"preparationNotes,omitempty"`
}

// Response модели

// AppointmentResponse запись на приём
type AppointmentResponse struct {
	AppointmentID       string    `json:"appointmentId"`
	PatientID           string    `json:"patientId"`
	PractitionerID      string    `json:"practitionerId"`
	TherapistID         *string   `json:"therapistId,omitempty"`
	AppointmentDate     string    `json:"appointmentDate"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	ServiceType         string    `json:"serviceType"`
	ConsultationType    string    `json:"consultationType"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	PreparationNotes    *string   `json:"preparationNotes,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей пациента на приём
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Converters

// ToDomainAppointment конвертирует запрос в domain.Appointment
func (r *CreateAppointmentRequest) ToDomainAppointment() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		PatientID:           r.PatientID,
		PractitionerID:      r.PractitionerID,
		TherapistID:         r.TherapistID,
		AppointmentDate:     date,
		StartTime:           start,
		EndTime:             end,
		ServiceType:         r.ServiceType,
		ConsultationType:    r.ConsultationType,
		SpecialInstructions: r.SpecialInstructions,
		PreparationNotes:    r.PreparationNotes,
		Status:              domain.AppointmentStatusScheduled,
	}, nil
}

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID:       a.AppointmentID,
		PatientID:           a.PatientID,
		PractitionerID:      a.PractitionerID,
		TherapistID:         a.TherapistID,
		AppointmentDate:     a.AppointmentDate.Format(domain.DateFormat),
		StartTime:           a.StartTime.String(),
		EndTime:             a.EndTime.String(),
		ServiceType:         a.ServiceType,
		ConsultationType:    a.ConsultationType,
		SpecialInstructions: a.SpecialInstructions,
		PreparationNotes:    a.PreparationNotes,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей в AppointmentListResponse
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
		Total:        len(appointments),
	}
	for _, appointment := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(appointment))
	}
	return resp
}
