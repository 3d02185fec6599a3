package salary

import "errors"

var (
	ErrSalaryNotFound  = errors.New("Salary record not found")
	ErrDuplicateSalary = errors.New("Salary already paid for this employee and period")
)
