package generate_slots

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	generateSlots "github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgPractitionerNotFound  = "специалист не найден"
	msgInvalidPractitionerID = "некорректный ID специалиста"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/generate/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID := vars["providerId"]
	if providerID == "" {
		h.logger.Warn("POST /slots/generate/{id} - Missing provider ID")
		handlers.RespondBadRequest(w, msgInvalidPractitionerID)
		return
	}

	// Тело опционально: без него сетка генерируется только при её отсутствии
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /slots/generate/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), providerID, req.Regenerate)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrPractitionerNotFound):
			h.logger.Warn("POST /slots/generate/{id} - Practitioner not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgPractitionerNotFound)

		case errors.Is(err, generateSlots.ErrInvalidData):
			h.logger.Warn("POST /slots/generate/{id} - Invalid data: provider_id=%s, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidPractitionerID)

		default:
			h.logger.Error("POST /slots/generate/{id} - Failed to generate slots: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/generate/{id} - Slots generated: provider_id=%s, created=%d, skipped=%v",
		providerID, result.SlotsCreated, result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleAll POST /api/v1/slots/generate
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /slots/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteAll(r.Context(), req.Regenerate)
	if err != nil {
		h.logger.Error("POST /slots/generate - Failed to generate slots for all providers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots/generate - Slots generated for %d providers, total=%d",
		len(result.Providers), result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseBulkResponse(result))
}
