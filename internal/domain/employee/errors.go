package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("Employee not found")
	ErrEmailExists      = errors.New("Email already registered in this hatchery")
)
