package models

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// Request модели

// CreateSlotRequest запрос на создание слота
// Если время не указано, используются стандартные часы сессии
type CreateSlotRequest struct {
	Date      string  `json:"date"`    // "2026-03-02"
	Session   string  `json:"session"` // morning | afternoon | full_day
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ListSlotsRequest запрос списка слотов за период
type ListSlotsRequest struct {
	From           string `json:"from"` // "2026-03-02"
	To             string `json:"to"`
	IncludeBlocked bool   `json:"includeBlocked"`
}

// SetBlockedRequest запрос на блокировку или разблокировку слота
type SetBlockedRequest struct {
	IsBlocked bool `json:"isBlocked"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Session   string    `json:"session"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Date:      s.Date.Format(domain.DateFormat),
		Session:   string(s.Session),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		IsBlocked: s.IsBlocked,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(slot))
	}

	return resp
}
