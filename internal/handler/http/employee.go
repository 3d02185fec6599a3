package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	employeeService "github.com/hatchhr/hatchhr-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByHatchery(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(s *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: s}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	found, err := h.employeeService.GetByID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByHatchery implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListByHatchery(w http.ResponseWriter, r *http.Request) {
	hatcheryID := chi.URLParam(r, "id")
	if hatcheryID == "" {
		response.BadRequest(w, "Hatchery ID is required", nil)
		return
	}

	employees, err := h.employeeService.ListByHatchery(r.Context(), hatcheryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
