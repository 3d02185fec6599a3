package hatchery

import "errors"

var (
	ErrHatcheryNotFound           = errors.New("Hatchery not found")
	ErrHatcheryNameExists         = errors.New("Hatchery name already registered")
	ErrRegistrationNumberExists   = errors.New("Registration number already registered")
	ErrHatcheryAdminNotConfigured = errors.New("Hatchery has no admin user")
)
