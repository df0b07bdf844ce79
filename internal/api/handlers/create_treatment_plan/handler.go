package create_treatment_plan

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/PKC-SchedulerService/internal/api/handlers"
	allocatePlan "github.com/m04kA/PKC-SchedulerService/internal/usecase/allocate_plan"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgTherapyNotFound    = "терапия не найдена"
	msgInsufficientStock  = "недостаточно материалов на складе"
	msgNoStaffAvailable   = "нет доступных сотрудников для назначения сеансов"
	msgInvalidData        = "некорректные данные запроса"
)

type Handler struct {
	useCase AllocatePlanUseCase
	logger  Logger
}

func NewHandler(useCase AllocatePlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/scheduler
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTreatmentPlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /scheduler - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /scheduler - Failed to parse start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var stockErr *allocatePlan.InsufficientStockError
		var noSlotErr *allocatePlan.NoSlotAvailableError

		switch {
		case errors.As(err, &stockErr):
			h.logger.Warn("POST /scheduler - Insufficient stock: patient_id=%s, therapy_id=%d, items=%d",
				req.PatientID, req.TherapyID, len(stockErr.Items))
			handlers.RespondJSON(w, http.StatusBadRequest, FromStockShortfalls(msgInsufficientStock, stockErr.Items))

		case errors.As(err, &noSlotErr):
			h.logger.Warn("POST /scheduler - No slot available: patient_id=%s, session=%d, date=%s",
				req.PatientID, noSlotErr.SessionNumber, noSlotErr.Date.Format("2006-01-02"))
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("не удалось подобрать время для сеанса %d", noSlotErr.SessionNumber))

		case errors.Is(err, allocatePlan.ErrTherapyNotFound):
			h.logger.Warn("POST /scheduler - Therapy not found: therapy_id=%d", req.TherapyID)
			handlers.RespondNotFound(w, msgTherapyNotFound)

		case errors.Is(err, allocatePlan.ErrNoStaffAvailable):
			h.logger.Warn("POST /scheduler - No staff available: patient_id=%s", req.PatientID)
			handlers.RespondError(w, http.StatusConflict, msgNoStaffAvailable)

		case errors.Is(err, allocatePlan.ErrInvalidData):
			h.logger.Warn("POST /scheduler - Invalid data: patient_id=%s, error=%v", req.PatientID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /scheduler - Failed to create treatment plan: patient_id=%s, error=%v",
				req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /scheduler - Treatment plan created: plan_id=%s, patient_id=%s, sessions=%d",
		result.TreatmentPlanID, req.PatientID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
