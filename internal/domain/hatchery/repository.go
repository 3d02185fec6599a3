package hatchery

import "context"

// Repository - interface for the hatcheries table
type Repository interface {
	Create(ctx context.Context, h Hatchery) (Hatchery, error)
	GetByID(ctx context.Context, id string) (Hatchery, error)
	// GetAdminID resolves the admin user of a hatchery. Returns
	// ErrHatcheryAdminNotConfigured when the scope has no admin.
	GetAdminID(ctx context.Context, hatcheryID string) (string, error)
}
