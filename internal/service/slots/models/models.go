package models

import (
	"time"

	"github.com/m04kA/PKC-SchedulerService/internal/domain"
)

// Request модели

// ListSlotsRequest запрос на получение сетки слотов специалиста
type ListSlotsRequest struct {
	ProviderID string  `json:"providerId"`
	Day        *string `json:"day,omitempty"`    // Фильтр по дню недели (опционально)
	Status     *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateSlotStatusRequest запрос на изменение статуса слота
type UpdateSlotStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// SlotResponse один слот сетки
type SlotResponse struct {
	SlotID     string    `json:"slotId"`
	ProviderID string    `json:"providerId"`
	Day        string    `json:"day"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SlotListResponse сетка слотов специалиста
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// Converters

// FromDomainSlot конвертирует domain.Slot в SlotResponse
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		SlotID:     slot.SlotID,
		ProviderID: slot.ProviderID,
		Day:        slot.Day,
		StartTime:  slot.StartTime.String(),
		EndTime:    slot.EndTime.String(),
		Status:     string(slot.Status),
		CreatedAt:  slot.CreatedAt,
		UpdatedAt:  slot.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain.Slot в SlotListResponse
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(slot))
	}
	return resp
}
