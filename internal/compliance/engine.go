// Package compliance evaluates EYFS staffing ratios for a single slot.
//
// The engine is pure: given the staff on duty and the number of children per
// age band it returns legal capacity, free places and qualification issues.
// It performs no I/O and keeps no state between calls.
package compliance

import "github.com/m04kA/SMC-NurseryService/internal/domain"

// Children per staff member for each ratio
const (
	Under2Ratio         = 3
	TwoToThreeRatio     = 4
	ThreePlusRatio      = 8
	ThreePlusQTSRatio   = 13
	minPFAHoldersNeeded = 1
)

// Summary tallies staff by qualification bucket
type Summary struct {
	Total       int
	PFAHolders  int
	Level3      int // Level 3 Approved
	Level2      int // Level 2 Approved
	QTS         int // QTS / EYTS / EYPS / Level 6+
	StudentL3   int // Studying Level 3/6
	StudentL2   int // Studying Level 2
	Unqualified int
}

// EffectiveLevel2 counts staff who may fill Level 2 positions
func (s Summary) EffectiveLevel2() int {
	return s.Level2 + s.StudentL3
}

// EffectiveLevel1 counts staff below Level 2. Not used by any ratio rule.
func (s Summary) EffectiveLevel1() int {
	return s.StudentL2
}

// EnoughLevel2 reports whether at least half of the roster (rounded down)
// can fill Level 2 positions
func (s Summary) EnoughLevel2() bool {
	return s.EffectiveLevel2() >= s.Total/2
}

// Summarize tallies the roster. Unknown levels count toward Total only.
func Summarize(staff []domain.StaffMember) Summary {
	summary := Summary{Total: len(staff)}
	for _, member := range staff {
		if member.IsPFAHolder {
			summary.PFAHolders++
		}
		switch member.QualificationLevel {
		case domain.QualificationLevel3Approved:
			summary.Level3++
		case domain.QualificationLevel2Approved:
			summary.Level2++
		case domain.QualificationQTS:
			summary.QTS++
		case domain.QualificationStudentLevel3:
			summary.StudentL3++
		case domain.QualificationStudentLevel2:
			summary.StudentL2++
		case domain.QualificationUnqualified:
			summary.Unqualified++
		}
	}
	return summary
}

// Evaluate computes capacity and compliance for a slot
func Evaluate(staff []domain.StaffMember, counts domain.ChildCount) domain.ComplianceResult {
	result := domain.NewComplianceResult()
	summary := Summarize(staff)

	if summary.PFAHolders < minPFAHoldersNeeded {
		for _, band := range domain.AllAgeBands {
			result.QualificationIssues[band] = []string{domain.IssueNoPFAHolder}
		}
		// Без PFA проверка останавливается, результат целиком несоответствующий
		return result
	}
	result.PFACompliant = true

	total := summary.Total
	hasLevel3 := summary.Level3 > 0
	enoughLevel2 := summary.EnoughLevel2()

	for _, band := range []domain.AgeBand{domain.AgeBandUnder2, domain.AgeBandTwoToThree} {
		if hasLevel3 && enoughLevel2 {
			result.MaxCapacity[band] = total * youngRatio(band)
			continue
		}
		result.QualificationIssues[band] = youngIssues(hasLevel3, enoughLevel2)
	}

	switch {
	case summary.QTS > 0 && hasLevel3:
		result.MaxCapacity[domain.AgeBandThreePlus] = total * ThreePlusQTSRatio
	case hasLevel3 && enoughLevel2:
		result.MaxCapacity[domain.AgeBandThreePlus] = total * ThreePlusRatio
	default:
		issues := []string{}
		if !hasLevel3 {
			issues = append(issues, domain.IssueNoLevel3Staff)
		}
		// QTS на смене снимает требование по Level 2 для старшей группы
		if !enoughLevel2 && summary.QTS == 0 {
			issues = append(issues, domain.IssueInsufficientLevel2Staff)
		}
		result.QualificationIssues[domain.AgeBandThreePlus] = issues
	}

	for _, band := range domain.AllAgeBands {
		result.Available[band] = max(0, result.MaxCapacity[band]-counts[band])
	}
	result.EYFSCompliant = eyfsCompliant(result.MaxCapacity, counts)
	result.Compliant = result.PFACompliant && result.EYFSCompliant

	return result
}

// CanAdmit reports whether one more child of the band fits into the slot
func CanAdmit(result domain.ComplianceResult, band domain.AgeBand) bool {
	return result.Available[band] > 0
}

func youngRatio(band domain.AgeBand) int {
	if band == domain.AgeBandUnder2 {
		return Under2Ratio
	}
	return TwoToThreeRatio
}

func youngIssues(hasLevel3, enoughLevel2 bool) []string {
	issues := []string{}
	if !hasLevel3 {
		issues = append(issues, domain.IssueNoLevel3Staff)
	}
	if !enoughLevel2 {
		issues = append(issues, domain.IssueInsufficientLevel2Staff)
	}
	return issues
}

func eyfsCompliant(maxCapacity map[domain.AgeBand]int, counts domain.ChildCount) bool {
	for _, band := range domain.AllAgeBands {
		if counts[band] > maxCapacity[band] {
			return false
		}
	}
	return true
}
