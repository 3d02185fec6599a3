package response

import (
	"errors"
	"net/http"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/hatchery"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/inventory"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Hatchery domain errors
	case errors.Is(err, hatchery.ErrHatcheryNotFound):
		NotFound(w, "Hatchery not found")
	case errors.Is(err, hatchery.ErrHatcheryNameExists):
		Conflict(w, "Hatchery name already registered")
	case errors.Is(err, hatchery.ErrRegistrationNumberExists):
		Conflict(w, "Registration number already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this hatchery")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidTransition):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already decided")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrDuplicateSalary):
		Conflict(w, "Salary already paid for this period")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Inventory item not found")
	case errors.Is(err, inventory.ErrInsufficientStock):
		BadRequest(w, "Adjustment would drive quantity below zero", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrInvalidType):
		BadRequest(w, "Unknown notification type", nil)

	// Dispatch errors that were not handled at the call site
	case errors.Is(err, dispatch.ErrUnroutableEvent):
		InternalServerError(w, "No recipient could be resolved for the notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
