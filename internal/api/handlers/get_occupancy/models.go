package get_occupancy

import (
	"net/url"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
	getOccupancy "github.com/m04kA/SMC-NurseryService/internal/usecase/get_occupancy"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	NonCompliant int             `json:"nonCompliant"`
	Slots        []SlotOccupancy `json:"slots"`
}

// SlotOccupancy загрузка слота
type SlotOccupancy struct {
	SlotID     string                      `json:"slotId"`
	Date       string                      `json:"date"`
	Session    string                      `json:"session"`
	IsBlocked  bool                        `json:"isBlocked"`
	StaffCount int                         `json:"staffCount"`
	PFAHolders int                         `json:"pfaHolders"`
	Counts     domain.ChildCount           `json:"counts"`
	Result     handlers.ComplianceResponse `json:"result"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) (*getOccupancy.Request, error) {
	from, to, err := handlers.ParseDateRange(query)
	if err != nil {
		return nil, err
	}

	return &getOccupancy.Request{
		From:           from,
		To:             to,
		IncludeBlocked: query.Get("includeBlocked") == "true",
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	slots := make([]SlotOccupancy, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotOccupancy{
			SlotID:     s.Slot.ID,
			Date:       s.Slot.Date.Format(domain.DateFormat),
			Session:    string(s.Slot.Session),
			IsBlocked:  s.Slot.IsBlocked,
			StaffCount: s.Staff.Total,
			PFAHolders: s.Staff.PFAHolders,
			Counts:     s.Counts,
			Result:     handlers.FromComplianceResult(s.Result),
		}
	}

	return &OccupancyResponse{
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		NonCompliant: resp.NonCompliant(),
		Slots:        slots,
	}
}
