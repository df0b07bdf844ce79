package get_patient_treatment_plans

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/PKC-SchedulerService/internal/service/plans"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
)

type Handler struct {
	service PlansService
	logger  Logger
}

func NewHandler(service PlansService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/{patientId}/treatment-plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["patientId"]
	if patientID == "" {
		h.logger.Warn("GET /patients/{id}/treatment-plans - Missing patient ID")
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetByPatient(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrInvalidInput):
			h.logger.Warn("GET /patients/{id}/treatment-plans - Invalid ID: %s", patientID)
			handlers.RespondBadRequest(w, msgInvalidPatientID)

		default:
			h.logger.Error("GET /patients/{id}/treatment-plans - Failed to list plans: patient_id=%s, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/{id}/treatment-plans - Retrieved %d plans for patient_id=%s",
		result.Total, patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
