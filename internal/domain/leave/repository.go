package leave

import (
	"context"
	"time"
)

// Repository - interface for the leaves table
type Repository interface {
	Create(ctx context.Context, request Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	ListByHatchery(ctx context.Context, hatcheryID string) ([]Leave, error)
	// Decide moves a request out of pending. The update is conditioned on
	// the row still being pending at write time; it reports false when the
	// row exists but is already terminal, so concurrent deciders serialize
	// on the store instead of an in-process lock.
	Decide(ctx context.Context, id string, status LeaveStatus, comments *string, decidedBy string, decidedAt time.Time) (bool, error)
}
