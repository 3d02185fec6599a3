package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/hatchery"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	hatcheryService "github.com/hatchhr/hatchhr-backend-go/internal/service/hatchery"
)

type HatcheryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type HatcheryHandlerImpl struct {
	hatcheryService *hatcheryService.Service
}

func NewHatcheryHandler(s *hatcheryService.Service) HatcheryHandler {
	return &HatcheryHandlerImpl{hatcheryService: s}
}

// Create implements HatcheryHandler.
func (h *HatcheryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req hatchery.CreateHatcheryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.hatcheryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Hatchery created successfully", created)
}

// Get implements HatcheryHandler.
func (h *HatcheryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	hatcheryID := chi.URLParam(r, "id")
	if hatcheryID == "" {
		response.BadRequest(w, "Hatchery ID is required", nil)
		return
	}

	found, err := h.hatcheryService.GetByID(r.Context(), hatcheryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}
