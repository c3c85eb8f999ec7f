package domain

import "time"

// Child represents a child registered by a parent
type Child struct {
	ID                  string
	ParentID            string
	Name                string
	DateOfBirth         time.Time
	SpecialRequirements *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AgeBandAt returns the child's age band on the given date
func (c *Child) AgeBandAt(date time.Time) AgeBand {
	return AgeBandAt(c.DateOfBirth, date)
}
