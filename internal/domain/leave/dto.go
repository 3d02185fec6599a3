package leave

// SubmitLeaveRequest - employee action creating a pending request
type SubmitLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
	RunID      *string `json:"run_id,omitempty"`
}

// DecideLeaveRequest - admin action resolving a pending request
type DecideLeaveRequest struct {
	Decision string  `json:"decision"`
	Comments *string `json:"comments,omitempty"`
}
