package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	salaryService "github.com/hatchhr/hatchhr-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService *salaryService.Service
}

func NewSalaryHandler(s *salaryService.Service) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: s}
}

// Pay implements SalaryHandler.
func (h *SalaryHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromClaims(r)
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req salary.PaySalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Pay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.salaryService.Pay(r.Context(), req, adminID)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnroutableEvent) {
			response.Created(w, "Salary recorded; notification could not be delivered", created)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary recorded successfully", created)
}

// Get implements SalaryHandler.
func (h *SalaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	salaryID := chi.URLParam(r, "id")
	if salaryID == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	found, err := h.salaryService.GetByID(r.Context(), salaryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByEmployee implements SalaryHandler.
func (h *SalaryHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	salaries, err := h.salaryService.ListActiveByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salaries)
}

// Delete implements SalaryHandler.
func (h *SalaryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	salaryID := chi.URLParam(r, "id")
	if salaryID == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	if err := h.salaryService.SoftDelete(r.Context(), salaryID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary record deleted successfully", nil)
}
