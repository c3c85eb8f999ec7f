package domain

import "time"

// AgeBand is a child age group with its own staffing ratio
type AgeBand string

const (
	AgeBandUnder2     AgeBand = "under_2"
	AgeBandTwoToThree AgeBand = "2_to_3"
	AgeBandThreePlus  AgeBand = "3_plus"
)

// AllAgeBands fixes the iteration order of bands everywhere in the service
var AllAgeBands = []AgeBand{
	AgeBandUnder2,
	AgeBandTwoToThree,
	AgeBandThreePlus,
}

// Age band boundaries in completed months
const (
	TwoToThreeMinAgeMonths = 24
	ThreePlusMinAgeMonths  = 36
)

// IsValid returns true if the band is one of AllAgeBands
func (b AgeBand) IsValid() bool {
	switch b {
	case AgeBandUnder2, AgeBandTwoToThree, AgeBandThreePlus:
		return true
	default:
		return false
	}
}

// Label returns the human readable name used in the nursery UI and reports
func (b AgeBand) Label() string {
	switch b {
	case AgeBandUnder2:
		return "Under 2"
	case AgeBandTwoToThree:
		return "2-3 years"
	case AgeBandThreePlus:
		return "3-5 years"
	default:
		return string(b)
	}
}

// AgeInMonths returns the number of completed months between dob and on
func AgeInMonths(dob, on time.Time) int {
	months := (on.Year()-dob.Year())*12 + int(on.Month()) - int(dob.Month())
	if on.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// AgeBandAt returns the band of a child born on dob at the given date
func AgeBandAt(dob, on time.Time) AgeBand {
	months := AgeInMonths(dob, on)
	switch {
	case months < TwoToThreeMinAgeMonths:
		return AgeBandUnder2
	case months < ThreePlusMinAgeMonths:
		return AgeBandTwoToThree
	default:
		return AgeBandThreePlus
	}
}
