package handlers

import (
	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

// ComplianceResponse результат расчёта соотношений в формате API
type ComplianceResponse struct {
	PFACompliant        bool                        `json:"pfaCompliant"`
	EYFSCompliant       bool                        `json:"eyfsCompliant"`
	Compliant           bool                        `json:"compliant"`
	MaxCapacity         map[domain.AgeBand]int      `json:"maxCapacity"`
	Available           map[domain.AgeBand]int      `json:"available"`
	QualificationIssues map[domain.AgeBand][]string `json:"qualificationIssues"`
	TotalCapacity       int                         `json:"totalCapacity"`
	TotalAvailable      int                         `json:"totalAvailable"`
}

// FromComplianceResult конвертирует результат движка в ответ API
func FromComplianceResult(r domain.ComplianceResult) ComplianceResponse {
	return ComplianceResponse{
		PFACompliant:        r.PFACompliant,
		EYFSCompliant:       r.EYFSCompliant,
		Compliant:           r.Compliant,
		MaxCapacity:         r.MaxCapacity,
		Available:           r.Available,
		QualificationIssues: r.QualificationIssues,
		TotalCapacity:       r.TotalCapacity(),
		TotalAvailable:      r.TotalAvailable(),
	}
}
