package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/inventory"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type inventoryRepository struct {
	db database.Querier
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db database.Querier) inventory.Repository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item inventory.Item) (inventory.Item, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	query := `
		INSERT INTO inventory_items (id, hatchery_id, name, category, quantity, unit, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, hatchery_id, name, category, quantity, unit, low_stock_threshold, created_at, updated_at
	`

	var created inventory.Item
	err := r.db.QueryRow(ctx, query,
		item.ID, item.HatcheryID, item.Name, item.Category,
		item.Quantity, item.Unit, item.LowStockThreshold,
	).Scan(
		&created.ID, &created.HatcheryID, &created.Name, &created.Category,
		&created.Quantity, &created.Unit, &created.LowStockThreshold,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return created, nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	query := `
		SELECT id, hatchery_id, name, category, quantity, unit, low_stock_threshold, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`

	var item inventory.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.HatcheryID, &item.Name, &item.Category,
		&item.Quantity, &item.Unit, &item.LowStockThreshold,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Item{}, inventory.ErrItemNotFound
		}
		return inventory.Item{}, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return item, nil
}

func (r *inventoryRepository) List(ctx context.Context, hatcheryID string) ([]inventory.Item, error) {
	query := `
		SELECT id, hatchery_id, name, category, quantity, unit, low_stock_threshold, created_at, updated_at
		FROM inventory_items
		WHERE hatchery_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, hatcheryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	var items []inventory.Item
	for rows.Next() {
		var item inventory.Item
		if err := rows.Scan(
			&item.ID, &item.HatcheryID, &item.Name, &item.Category,
			&item.Quantity, &item.Unit, &item.LowStockThreshold,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// AdjustQuantity applies the delta in one guarded statement. A delta that
// would drive the quantity negative matches no row, so the stored value
// never changes on rejection.
func (r *inventoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (inventory.Item, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING id, hatchery_id, name, category, quantity, unit, low_stock_threshold, created_at, updated_at
	`

	var item inventory.Item
	err := r.db.QueryRow(ctx, query, id, delta).Scan(
		&item.ID, &item.HatcheryID, &item.Name, &item.Category,
		&item.Quantity, &item.Unit, &item.LowStockThreshold,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish a missing item from a rejected delta.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return inventory.Item{}, getErr
			}
			return inventory.Item{}, inventory.ErrInsufficientStock
		}
		return inventory.Item{}, fmt.Errorf("failed to adjust inventory quantity: %w", err)
	}

	return item, nil
}
