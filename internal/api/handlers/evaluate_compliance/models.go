package evaluate_compliance

import (
	"fmt"

	"github.com/m04kA/SMC-NurseryService/internal/api/handlers"
	"github.com/m04kA/SMC-NurseryService/internal/compliance"
	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// maxRosterSize ограничение размера смены в одном запросе
const maxRosterSize = 500

// EvaluateRequest HTTP request model
type EvaluateRequest struct {
	Staff  []StaffInput   `json:"staff"`
	Counts map[string]int `json:"counts"`
}

// StaffInput сотрудник смены
// Неизвестные уровни квалификации учитываются только в размере смены
type StaffInput struct {
	QualificationLevel string `json:"qualificationLevel"`
	IsPFAHolder        bool   `json:"isPfaHolder"`
}

// EvaluateResponse HTTP response model
type EvaluateResponse struct {
	Staff  StaffSummary                `json:"staff"`
	Counts domain.ChildCount           `json:"counts"`
	Result handlers.ComplianceResponse `json:"result"`
}

// StaffSummary состав смены по квалификациям
type StaffSummary struct {
	Total           int  `json:"total"`
	PFAHolders      int  `json:"pfaHolders"`
	Level3          int  `json:"level3"`
	Level2          int  `json:"level2"`
	QTS             int  `json:"qts"`
	StudentLevel3   int  `json:"studentLevel3"`
	StudentLevel2   int  `json:"studentLevel2"`
	Unqualified     int  `json:"unqualified"`
	EffectiveLevel2 int  `json:"effectiveLevel2"`
	EnoughLevel2    bool `json:"enoughLevel2"`
}

// ToDomain конвертирует запрос в входные данные движка
func (r *EvaluateRequest) ToDomain() ([]domain.StaffMember, domain.ChildCount, error) {
	if len(r.Staff) > maxRosterSize {
		return nil, nil, fmt.Errorf("staff must contain at most %d members", maxRosterSize)
	}

	staff := make([]domain.StaffMember, len(r.Staff))
	for i, s := range r.Staff {
		staff[i] = domain.StaffMember{
			QualificationLevel: domain.QualificationLevel(s.QualificationLevel),
			IsPFAHolder:        s.IsPFAHolder,
		}
	}

	counts := domain.NewChildCount()
	for key, n := range r.Counts {
		band := domain.AgeBand(key)
		if !band.IsValid() {
			return nil, nil, fmt.Errorf("unknown age band %q", key)
		}
		counts[band] = n
	}

	return staff, counts, nil
}

// NewEvaluateResponse формирует ответ из результата движка
func NewEvaluateResponse(summary compliance.Summary, counts domain.ChildCount, result domain.ComplianceResult) *EvaluateResponse {
	return &EvaluateResponse{
		Staff: StaffSummary{
			Total:           summary.Total,
			PFAHolders:      summary.PFAHolders,
			Level3:          summary.Level3,
			Level2:          summary.Level2,
			QTS:             summary.QTS,
			StudentLevel3:   summary.StudentL3,
			StudentLevel2:   summary.StudentL2,
			Unqualified:     summary.Unqualified,
			EffectiveLevel2: summary.EffectiveLevel2(),
			EnoughLevel2:    summary.EnoughLevel2(),
		},
		Counts: counts,
		Result: handlers.FromComplianceResult(result),
	}
}
