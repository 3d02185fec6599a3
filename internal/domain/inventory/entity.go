package inventory

import "time"

// Item entity. Quantity is the only frequently mutated field; there is no
// historical versioning.
type Item struct {
	ID         string
	HatcheryID string

	Name     string
	Category string
	Quantity int
	Unit     string

	// LowStockThreshold is the per-item boundary for the inventory.low
	// event. Crossing it downward emits once; sitting below it does not.
	LowStockThreshold int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLow reports whether the item currently sits at or below its threshold.
func (i Item) IsLow() bool {
	return i.Quantity <= i.LowStockThreshold
}
