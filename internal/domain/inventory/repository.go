package inventory

import "context"

// Repository - interface for the inventory_items table
type Repository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	List(ctx context.Context, hatcheryID string) ([]Item, error)
	// AdjustQuantity applies delta in a single guarded update: the write
	// only lands when quantity+delta stays non-negative, otherwise it
	// reports ErrInsufficientStock and the stored quantity is unchanged.
	// Returns the item as stored after the adjustment.
	AdjustQuantity(ctx context.Context, id string, delta int) (Item, error)
}
