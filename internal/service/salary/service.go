package salary

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EventDispatcher is what this service needs from the notification
// dispatcher.
type EventDispatcher interface {
	Dispatch(ctx context.Context, e event.Event) (notification.Notification, error)
}

// Service validates and creates salary payments. A record is immutable
// after creation except for soft-delete.
type Service struct {
	salaryRepo   salary.Repository
	employeeRepo employee.Repository
	dispatcher   EventDispatcher
}

func NewService(salaryRepo salary.Repository, employeeRepo employee.Repository, dispatcher EventDispatcher) *Service {
	return &Service{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
	}
}

// Pay records one salary payment for one period. The duplicate check races
// against the store's partial unique index, not an application lock: of two
// concurrent payers for the same (employee, month, year), exactly one
// succeeds and the other receives ErrDuplicateSalary.
func (s *Service) Pay(ctx context.Context, req salary.PaySalaryRequest, paidBy string) (salary.Salary, error) {
	var validationErrs validator.ValidationErrors

	if validator.IsEmpty(req.EmployeeID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(req.Month) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if req.Year < 1 {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "year", Message: "is required"})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "amount", Message: "must be a positive decimal"})
	}

	bonus, err := parseNonNegative(req.Bonus)
	if err != nil {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "bonus", Message: "must be a non-negative decimal"})
	}
	deductions, err := parseNonNegative(req.Deductions)
	if err != nil {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "deductions", Message: "must be a non-negative decimal"})
	}

	paymentDate, dateOK := validator.IsValidDate(req.PaymentDate)
	if !dateOK {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "payment_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	if len(validationErrs) > 0 {
		return salary.Salary{}, validationErrs
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.Salary{}, err
	}

	net := amount.Add(bonus).Sub(deductions)

	created, err := s.salaryRepo.Create(ctx, salary.Salary{
		EmployeeID:  emp.ID,
		Amount:      amount,
		Month:       req.Month,
		Year:        req.Year,
		Bonus:       bonus,
		Deductions:  deductions,
		NetAmount:   net,
		PaymentDate: paymentDate,
		Notes:       req.Notes,
		PaidBy:      paidBy,
	})
	if err != nil {
		return salary.Salary{}, err
	}
	created.EmployeeName = &emp.Name

	_, err = s.dispatcher.Dispatch(ctx, event.Event{
		Kind:         event.KindSalaryPaid,
		HatcheryID:   emp.HatcheryID,
		RelatedModel: notification.RelatedSalary,
		RelatedID:    created.ID,
		Payload: map[string]string{
			"employee_name": emp.Name,
			"month":         strconv.Itoa(created.Month),
			"year":          strconv.Itoa(created.Year),
			"net_amount":    created.NetAmount.String(),
		},
	})
	if err != nil {
		return created, fmt.Errorf("salary recorded but notification failed: %w", err)
	}

	return created, nil
}

// SoftDelete retires a record from active listings and from the per-period
// uniqueness scope. The row itself stays for audit.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	return s.salaryRepo.SoftDelete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	return s.salaryRepo.GetByID(ctx, id)
}

func (s *Service) ListActiveByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	return s.salaryRepo.ListActiveByEmployee(ctx, employeeID)
}

func parseNonNegative(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative value %s", value)
	}
	return d, nil
}
