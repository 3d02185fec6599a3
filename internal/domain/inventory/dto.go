package inventory

// CreateItemRequest - payload for registering a stock item
type CreateItemRequest struct {
	HatcheryID        string `json:"hatchery_id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	Unit              string `json:"unit"`
	LowStockThreshold *int   `json:"low_stock_threshold,omitempty"`
}

// AdjustQuantityRequest - signed stock delta
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}
