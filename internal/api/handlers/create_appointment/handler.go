package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/PKC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/PKC-SchedulerService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные записи"
	msgTimeConflict       = "врач уже занят в выбранное время"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: practitioner_id=%s, date=%s %s",
				req.PractitionerID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid data: patient_id=%s, error=%v", req.PatientID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient_id=%s, error=%v",
				req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, patient_id=%s",
		result.AppointmentID, req.PatientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
