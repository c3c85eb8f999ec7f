package get_slot_compliance

import (
	"time"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
	getSlotCompliance "github.com/m04kA/SMC-NurseryService/internal/usecase/get_slot_compliance"
)

// SlotComplianceResponse HTTP response model
type SlotComplianceResponse struct {
	SlotID      string                      `json:"slotId"`
	Date        string                      `json:"date"`
	Session     string                      `json:"session"`
	IsBlocked   bool                        `json:"isBlocked"`
	StaffCount  int                         `json:"staffCount"`
	Counts      domain.ChildCount           `json:"counts"`
	Result      handlers.ComplianceResponse `json:"result"`
	Cached      bool                        `json:"cached"`
	EvaluatedAt string                      `json:"evaluatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotCompliance.Response) *SlotComplianceResponse {
	return &SlotComplianceResponse{
		SlotID:      resp.Slot.ID,
		Date:        resp.Slot.Date.Format(domain.DateFormat),
		Session:     string(resp.Slot.Session),
		IsBlocked:   resp.Slot.IsBlocked,
		StaffCount:  resp.StaffCount,
		Counts:      resp.Counts,
		Result:      handlers.FromComplianceResult(resp.Result),
		Cached:      resp.Cached,
		EvaluatedAt: resp.EvaluatedAt.Format(time.RFC3339),
	}
}
