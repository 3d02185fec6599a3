package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave entity. Requests are never hard-deleted; decided requests are the
// audit trail of the approval workflow.
type Leave struct {
	ID         string
	EmployeeID string

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	// RunID optionally points into the hatchery's production-run ledger,
	// which lives outside this service. Stored and returned, never read.
	RunID *string

	Status        LeaveStatus
	AdminComments *string
	DecidedBy     *string
	DecidedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields (for responses)
	EmployeeName *string
}
