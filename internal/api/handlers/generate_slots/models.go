package generate_slots

import (
	generateSlots "github.com/m04kA/PKC-SchedulerService/internal/usecase/generate_slots"
)

// GenerateSlotsRequest тело запроса на генерацию сетки слотов
type GenerateSlotsRequest struct {
	Regenerate bool `json:"regenerate"`
}

// GenerateSlotsResponse результат генерации для одного специалиста
type GenerateSlotsResponse struct {
	ProviderID   string `json:"providerId"`
	SlotsCreated int    `json:"slotsCreated"`
	Skipped      bool   `json:"skipped"`
}

// BulkGenerateResponse результат массовой генерации
type BulkGenerateResponse struct {
	Providers []GenerateSlotsResponse `json:"providers"`
	Total     int                     `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		ProviderID:   resp.ProviderID,
		SlotsCreated: resp.SlotsCreated,
		Skipped:      resp.Skipped,
	}
}

// FromUseCaseBulkResponse конвертирует результат массовой генерации
func FromUseCaseBulkResponse(resp *generateSlots.BulkResponse) *BulkGenerateResponse {
	out := &BulkGenerateResponse{
		Providers: make([]GenerateSlotsResponse, 0, len(resp.Providers)),
		Total:     resp.Total,
	}
	for _, p := range resp.Providers {
		out.Providers = append(out.Providers, *FromUseCaseResponse(&p))
	}
	return out
}
