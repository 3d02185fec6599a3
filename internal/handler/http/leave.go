package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	leaveService "github.com/hatchhr/hatchhr-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByHatchery(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.Service
}

func NewLeaveHandler(s *leaveService.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: s}
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		// The request may have been stored even though the admin could
		// not be notified; report that as a degraded success.
		if errors.Is(err, dispatch.ErrUnroutableEvent) {
			response.Created(w, "Leave request submitted; admin notification could not be delivered", created)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if leaveID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	adminID, err := userIDFromClaims(r)
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := l.leaveService.Decide(r.Context(), leaveID, req, adminID)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnroutableEvent) {
			response.SuccessWithMessage(w, "Leave request decided; employee notification could not be delivered", decided)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request decided successfully", decided)
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if leaveID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	found, err := l.leaveService.GetByID(r.Context(), leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByEmployee implements LeaveHandler.
func (l *LeaveHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	leaves, err := l.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// ListByHatchery implements LeaveHandler.
func (l *LeaveHandlerImpl) ListByHatchery(w http.ResponseWriter, r *http.Request) {
	hatcheryID := chi.URLParam(r, "id")
	if hatcheryID == "" {
		response.BadRequest(w, "Hatchery ID is required", nil)
		return
	}

	leaves, err := l.leaveService.ListByHatchery(r.Context(), hatcheryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
