package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-NurseryService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-NurseryService/pkg/ptr"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	ChildID *string         `json:"childId,omitempty"`
	Slots   []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота со свободными местами
type AvailableSlot struct {
	ID        string         `json:"id"`
	Date      string         `json:"date"`
	Session   string         `json:"session"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Available map[string]int `json:"available"`
	AgeBand   *string        `json:"ageBand,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		available := make(map[string]int, len(slot.Available))
		for band, n := range slot.Available {
			available[string(band)] = n
		}

		var band *string
		if slot.AgeBand != nil {
			band = ptr.Ptr(string(*slot.AgeBand))
		}

		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Date:      slot.Date.Format(domain.DateFormat),
			Session:   string(slot.Session),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: available,
			AgeBand:   band,
		}
	}

	return &AvailableSlotsResponse{
		From:    resp.From.Format(domain.DateFormat),
		To:      resp.To.Format(domain.DateFormat),
		ChildID: resp.ChildID,
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(parentID, fromStr, toStr, childID string) (*getAvailableSlots.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ParentID: parentID,
		From:     from,
		To:       to,
	}
	if childID != "" {
		req.ChildID = ptr.Ptr(childID)
	}

	return req, nil
}
