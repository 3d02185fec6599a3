package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
)

// EventDispatcher is what this service needs from the notification
// dispatcher.
type EventDispatcher interface {
	Dispatch(ctx context.Context, e event.Event) (notification.Notification, error)
}

// Service is the leave workflow engine: the only writer of leave status.
type Service struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
	dispatcher   EventDispatcher
}

func NewService(leaveRepo leave.Repository, employeeRepo employee.Repository, dispatcher EventDispatcher) *Service {
	return &Service{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
	}
}

// Submit creates a pending request and notifies the hatchery admin. When
// the request was stored but the notification could not be dispatched, the
// stored request is returned together with the dispatch error; the request
// is not rolled back.
func (s *Service) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.Leave, error) {
	var validationErrs validator.ValidationErrors

	if validator.IsEmpty(req.EmployeeID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(req.Reason) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	startDate, startOK := validator.IsValidDate(req.StartDate)
	if !startOK {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	endDate, endOK := validator.IsValidDate(req.EndDate)
	if !endOK {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if startOK && endOK && endDate.Before(startDate) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(validationErrs) > 0 {
		return leave.Leave{}, validationErrs
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Leave{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		RunID:      req.RunID,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	created.EmployeeName = &emp.Name

	_, err = s.dispatcher.Dispatch(ctx, event.Event{
		Kind:         event.KindLeaveSubmitted,
		HatcheryID:   emp.HatcheryID,
		RelatedModel: notification.RelatedLeave,
		RelatedID:    created.ID,
		Payload: map[string]string{
			"employee_name": emp.Name,
			"start_date":    created.StartDate.Format("2006-01-02"),
			"end_date":      created.EndDate.Format("2006-01-02"),
			"reason":        created.Reason,
		},
	})
	if err != nil {
		return created, fmt.Errorf("leave request created but notification failed: %w", err)
	}

	return created, nil
}

// Decide resolves a pending request. The only transitions are
// pending->approved and pending->rejected; the store-level status predicate
// serializes concurrent deciders, and the loser gets ErrLeaveAlreadyDecided.
func (s *Service) Decide(ctx context.Context, leaveID string, req leave.DecideLeaveRequest, adminID string) (leave.Leave, error) {
	decision := leave.LeaveStatus(req.Decision)
	if decision != leave.LeaveStatusApproved && decision != leave.LeaveStatusRejected {
		return leave.Leave{}, leave.ErrInvalidTransition
	}

	decided, err := s.leaveRepo.Decide(ctx, leaveID, decision, req.Comments, adminID, time.Now())
	if err != nil {
		return leave.Leave{}, err
	}
	if !decided {
		// The row was not pending at write time, or does not exist.
		current, err := s.leaveRepo.GetByID(ctx, leaveID)
		if err != nil {
			return leave.Leave{}, err
		}
		return current, leave.ErrLeaveAlreadyDecided
	}

	updated, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to reload decided leave request: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, updated.EmployeeID)
	if err != nil {
		return leave.Leave{}, err
	}

	payload := map[string]string{
		"employee_name": emp.Name,
		"decision":      string(decision),
	}
	if req.Comments != nil {
		payload["comments"] = *req.Comments
	}

	_, err = s.dispatcher.Dispatch(ctx, event.Event{
		Kind:         event.KindLeaveDecided,
		HatcheryID:   emp.HatcheryID,
		RelatedModel: notification.RelatedLeave,
		RelatedID:    updated.ID,
		Payload:      payload,
	})
	if err != nil {
		return updated, fmt.Errorf("leave request decided but notification failed: %w", err)
	}

	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	return s.leaveRepo.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListByHatchery(ctx context.Context, hatcheryID string) ([]leave.Leave, error) {
	return s.leaveRepo.ListByHatchery(ctx, hatcheryID)
}
