package domain

import "time"

// StaffMember represents a nursery practitioner
type StaffMember struct {
	ID                 string
	Name               string
	Email              string
	QualificationLevel QualificationLevel
	IsPFAHolder        bool // Paediatric First Aid certificate
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StaffSchedule assigns a staff member to a slot
type StaffSchedule struct {
	ID        string
	StaffID   string
	SlotID    string
	CreatedAt time.Time
}
