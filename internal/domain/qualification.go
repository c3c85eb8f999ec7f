package domain

// QualificationLevel represents a staff member's childcare qualification
// Values are the labels stored in staff.qualification_level
type QualificationLevel string

const (
	QualificationUnqualified    QualificationLevel = "Unqualified/Other"
	QualificationStudentLevel2  QualificationLevel = "Student/Apprentice (Studying Level 2)"
	QualificationStudentLevel3  QualificationLevel = "Student/Apprentice (Studying Level 3/6)"
	QualificationLevel2Approved QualificationLevel = "Level 2 Approved"
	QualificationLevel3Approved QualificationLevel = "Level 3 Approved"
	QualificationQTS            QualificationLevel = "QTS / EYTS / EYPS / Level 6+"
)

// QualificationLevels lists all known levels ordered by seniority (lowest first)
var QualificationLevels = []QualificationLevel{
	QualificationUnqualified,
	QualificationStudentLevel2,
	QualificationStudentLevel3,
	QualificationLevel2Approved,
	QualificationLevel3Approved,
	QualificationQTS,
}

// Rank returns the seniority of the level (0 = Unqualified/Other)
// Unknown levels return -1
func (q QualificationLevel) Rank() int {
	for i, level := range QualificationLevels {
		if level == q {
			return i
		}
	}
	return -1
}

// IsKnown returns true if the level belongs to the closed set of levels
func (q QualificationLevel) IsKnown() bool {
	return q.Rank() >= 0
}

// String returns the display label
func (q QualificationLevel) String() string {
	return string(q)
}

// ParseQualificationLevel converts a label to a QualificationLevel
// Returns false if the label is not a known level
func ParseQualificationLevel(s string) (QualificationLevel, bool) {
	level := QualificationLevel(s)
	return level, level.IsKnown()
}
