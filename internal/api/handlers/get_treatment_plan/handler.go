package get_treatment_plan

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/PKC-SchedulerService/internal/service/plans"
)

const (
	msgInvalidPlanID = "некорректный ID плана лечения"
	msgNotFound      = "план лечения не найден"
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

// Handle GET /api/v1/treatment-plans/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID := vars["planId"]
	if planID == "" {
		h.logger.Warn("GET /treatment-plans/{id} - Missing plan ID")
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	result, err := h.service.GetByID(r.Context(), planID)
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("GET /treatment-plans/{id} - Plan not found: plan_id=%s", planID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, plans.ErrInvalidInput):
			h.logger.Warn("GET /treatment-plans/{id} - Invalid ID: %s", planID)
			handlers.RespondBadRequest(w, msgInvalidPlanID)

		default:
			h.logger.Error("GET /treatment-plans/{id} - Failed to get plan: plan_id=%s, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /treatment-plans/{id} - Plan retrieved: plan_id=%s, sessions=%d",
		planID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
