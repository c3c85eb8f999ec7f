package domain

// Qualification issue labels reported per age band
const (
	IssueNoPFAHolder             = "No PFA Holder"
	IssueNoLevel3Staff           = "No Level 3 Staff"
	IssueInsufficientLevel2Staff = "Insufficient Level 2 Staff"
)

// ChildCount holds the number of children per age band for one slot
// A missing band reads as zero
type ChildCount map[AgeBand]int

// NewChildCount returns a count with every band set to zero
func NewChildCount() ChildCount {
	counts := make(ChildCount, len(AllAgeBands))
	for _, band := range AllAgeBands {
		counts[band] = 0
	}
	return counts
}

// Total returns the number of children across all bands
func (c ChildCount) Total() int {
	total := 0
	for _, band := range AllAgeBands {
		total += c[band]
	}
	return total
}

// ComplianceResult is the outcome of a staffing ratio evaluation
// It is computed on every request and never stored
type ComplianceResult struct {
	PFACompliant        bool
	EYFSCompliant       bool
	Compliant           bool
	MaxCapacity         map[AgeBand]int
	Available           map[AgeBand]int
	QualificationIssues map[AgeBand][]string
}

// NewComplianceResult returns a result with zero capacity and no issues for every band
func NewComplianceResult() ComplianceResult {
	result := ComplianceResult{
		MaxCapacity:         make(map[AgeBand]int, len(AllAgeBands)),
		Available:           make(map[AgeBand]int, len(AllAgeBands)),
		QualificationIssues: make(map[AgeBand][]string, len(AllAgeBands)),
	}
	for _, band := range AllAgeBands {
		result.MaxCapacity[band] = 0
		result.Available[band] = 0
		result.QualificationIssues[band] = []string{}
	}
	return result
}

// TotalCapacity returns the summed legal capacity across bands
func (r ComplianceResult) TotalCapacity() int {
	total := 0
	for _, band := range AllAgeBands {
		total += r.MaxCapacity[band]
	}
	return total
}

// TotalAvailable returns the summed free places across bands
func (r ComplianceResult) TotalAvailable() int {
	total := 0
	for _, band := range AllAgeBands {
		total += r.Available[band]
	}
	return total
}

// HasIssues returns true if any band reports a qualification issue
func (r ComplianceResult) HasIssues() bool {
	for _, band := range AllAgeBands {
		if len(r.QualificationIssues[band]) > 0 {
			return true
		}
	}
	return false
}
