package inventory

import "errors"

var (
	ErrItemNotFound      = errors.New("Inventory item not found")
	ErrInsufficientStock = errors.New("Insufficient stock for requested adjustment")
)
