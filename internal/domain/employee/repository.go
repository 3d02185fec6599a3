package employee

import "context"

// Repository - interface for the employees table
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ListByHatchery(ctx context.Context, hatcheryID string) ([]Employee, error)
}
