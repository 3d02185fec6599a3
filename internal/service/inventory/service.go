package inventory

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/inventory"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
)

// EventDispatcher is what this service needs from the notification
// dispatcher.
type EventDispatcher interface {
	Dispatch(ctx context.Context, e event.Event) (notification.Notification, error)
}

// Service owns stock quantity changes and the low-stock event policy.
type Service struct {
	repo            inventory.Repository
	dispatcher      EventDispatcher
	defaultLowStock int
}

func NewService(repo inventory.Repository, dispatcher EventDispatcher, defaultLowStock int) *Service {
	return &Service{
		repo:            repo,
		dispatcher:      dispatcher,
		defaultLowStock: defaultLowStock,
	}
}

func (s *Service) Create(ctx context.Context, req inventory.CreateItemRequest) (inventory.Item, error) {
	var validationErrs validator.ValidationErrors

	if validator.IsEmpty(req.HatcheryID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "hatchery_id", Message: "is required"})
	}
	if validator.IsEmpty(req.Name) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(req.Category) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if validator.IsEmpty(req.Unit) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "unit", Message: "is required"})
	}
	if req.Quantity < 0 {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "quantity", Message: "must not be negative"})
	}

	threshold := s.defaultLowStock
	if req.LowStockThreshold != nil {
		if *req.LowStockThreshold < 0 {
			validationErrs = append(validationErrs, validator.ValidationError{Field: "low_stock_threshold", Message: "must not be negative"})
		} else {
			threshold = *req.LowStockThreshold
		}
	}

	if len(validationErrs) > 0 {
		return inventory.Item{}, validationErrs
	}

	return s.repo.Create(ctx, inventory.Item{
		HatcheryID:        req.HatcheryID,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		LowStockThreshold: threshold,
	})
}

// AdjustQuantity applies a signed delta. The store rejects a delta that
// would drive the quantity negative; on a downward crossing of the item's
// threshold exactly one inventory.low event is dispatched. Dropping further
// while already below the threshold does not re-notify.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (inventory.Item, error) {
	item, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return inventory.Item{}, err
	}

	previous := item.Quantity - delta
	if previous > item.LowStockThreshold && item.IsLow() {
		_, err := s.dispatcher.Dispatch(ctx, event.Event{
			Kind:         event.KindInventoryLow,
			HatcheryID:   item.HatcheryID,
			RelatedModel: notification.RelatedInventory,
			RelatedID:    item.ID,
			Payload: map[string]string{
				"item_name": item.Name,
				"quantity":  strconv.Itoa(item.Quantity),
				"unit":      item.Unit,
				"threshold": strconv.Itoa(item.LowStockThreshold),
			},
		})
		if err != nil {
			return item, fmt.Errorf("quantity adjusted but notification failed: %w", err)
		}
	}

	return item, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (inventory.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, hatcheryID string) ([]inventory.Item, error) {
	return s.repo.List(ctx, hatcheryID)
}
