package find_available_practitioners

import (
	"errors"
	"net/http"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	findAvailable "github.com/m04kA/PKC-SchedulerService/internal/usecase/find_available"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase FindAvailableUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindAvailableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/available - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots/available - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailable.ErrInvalidData):
			h.logger.Warn("POST /slots/available - Invalid data: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /slots/available - Failed to find practitioners: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/available - Found %d available practitioners for %s %s",
		len(result.Practitioners), req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
