package domain

// Business validation constants
const (
	MaxStaffNameLength          = 200
	MaxChildNameLength          = 200
	MaxSpecialRequirementsLen   = 1000
	MaxCancellationReasonLength = 500
	MaxOccupancyRangeDays       = 62
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Roles передаются шлюзом в заголовке X-User-Role
const (
	RoleParent = "parent"
	RoleAdmin  = "admin"
)
