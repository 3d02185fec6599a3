package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary - a paid salary record. At most one active (non-soft-deleted)
// record may exist per (employee, month, year); the database enforces this
// with a partial unique index so concurrent payers race safely.
type Salary struct {
	ID         string
	EmployeeID string

	Amount     decimal.Decimal
	Month      int
	Year       int
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
	NetAmount  decimal.Decimal

	PaymentDate time.Time
	Notes       *string
	PaidBy      string

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields (for responses)
	EmployeeName *string
}

// IsDeleted reports whether the record has been soft-deleted and therefore
// no longer counts toward the per-period uniqueness rule.
func (s Salary) IsDeleted() bool {
	return s.DeletedAt != nil
}
