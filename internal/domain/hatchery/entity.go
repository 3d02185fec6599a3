package hatchery

import "time"

// Hatchery is the organization scope. Every employee and stock item belongs
// to exactly one hatchery, and its admin user receives the workflow
// notifications raised inside that scope.
type Hatchery struct {
	ID                 string
	Name               string
	RegistrationNumber string
	Address            *string
	AdminUserID        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
