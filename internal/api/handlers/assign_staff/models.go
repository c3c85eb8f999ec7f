package assign_staff

// AssignStaffRequest HTTP request model
type AssignStaffRequest struct {
	StaffID string `json:"staffId"`
}
