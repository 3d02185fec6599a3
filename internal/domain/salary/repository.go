package salary

import "context"

// Repository - interface for the salaries table
type Repository interface {
	// Create inserts a record. A violation of the active-period unique
	// index surfaces as ErrDuplicateSalary; the check is atomic with the
	// insert, so at most one of two concurrent creators succeeds.
	Create(ctx context.Context, s Salary) (Salary, error)
	GetByID(ctx context.Context, id string) (Salary, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Salary, error)
	SoftDelete(ctx context.Context, id string) error
}
