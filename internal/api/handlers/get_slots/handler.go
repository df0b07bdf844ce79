package get_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/PKC-SchedulerService/internal/service/slots"
	"github.com/m04kA/PKC-SchedulerService/internal/service/slots/models"
)

const (
	msgInvalidProviderID = "некорректный ID специалиста"
	msgInvalidFilter     = "некорректные параметры фильтрации"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{providerId}?day=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID := vars["providerId"]
	if providerID == "" {
		h.logger.Warn("GET /slots/{id} - Missing provider ID")
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	req := &models.ListSlotsRequest{ProviderID: providerID}
	if day := r.URL.Query().Get("day"); day != "" {
		req.Day = &day
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /slots/{id} - Invalid filter: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /slots/{id} - Failed to list slots: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{id} - Slots retrieved: provider_id=%s, total=%d", providerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
