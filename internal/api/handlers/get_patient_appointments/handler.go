package get_patient_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/PKC-SchedulerService/internal/service/appointments"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
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

// Handle GET /api/v1/patients/{patientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["patientId"]
	if patientID == "" {
		h.logger.Warn("GET /patients/{id}/appointments - Missing patient ID")
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetByPatient(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /patients/{id}/appointments - Invalid ID: %s", patientID)
			handlers.RespondBadRequest(w, msgInvalidPatientID)

		default:
			h.logger.Error("GET /patients/{id}/appointments - Failed to list appointments: patient_id=%s, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/{id}/appointments - Retrieved %d appointments for patient_id=%s",
		result.Total, patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
