package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/inventory"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	inventoryService "github.com/hatchhr/hatchhr-backend-go/internal/service/inventory"
)

type InventoryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByHatchery(w http.ResponseWriter, r *http.Request)
	AdjustQuantity(w http.ResponseWriter, r *http.Request)
}

type InventoryHandlerImpl struct {
	inventoryService *inventoryService.Service
}

func NewInventoryHandler(s *inventoryService.Service) InventoryHandler {
	return &InventoryHandlerImpl{inventoryService: s}
}

// Create implements InventoryHandler.
func (h *InventoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.inventoryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inventory item created successfully", created)
}

// Get implements InventoryHandler.
func (h *InventoryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	item, err := h.inventoryService.GetByID(r.Context(), itemID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// ListByHatchery implements InventoryHandler.
func (h *InventoryHandlerImpl) ListByHatchery(w http.ResponseWriter, r *http.Request) {
	hatcheryID := chi.URLParam(r, "id")
	if hatcheryID == "" {
		response.BadRequest(w, "Hatchery ID is required", nil)
		return
	}

	items, err := h.inventoryService.List(r.Context(), hatcheryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// AdjustQuantity implements InventoryHandler.
func (h *InventoryHandlerImpl) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	var req inventory.AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdjustQuantity decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.inventoryService.AdjustQuantity(r.Context(), itemID, req.Delta)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnroutableEvent) {
			response.SuccessWithMessage(w, "Quantity adjusted; low stock alert could not be delivered", item)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Quantity adjusted successfully", item)
}
