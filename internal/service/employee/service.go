package employee

import (
	"context"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/hatchery"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Service struct {
	employeeRepo employee.Repository
	hatcheryRepo hatchery.Repository
}

func NewService(employeeRepo employee.Repository, hatcheryRepo hatchery.Repository) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		hatcheryRepo: hatcheryRepo,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	var validationErrs validator.ValidationErrors

	if validator.IsEmpty(req.HatcheryID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "hatchery_id", Message: "is required"})
	}
	if validator.IsEmpty(req.Name) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(req.Email) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(req.Phone) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "phone", Message: "is required"})
	} else if !validator.IsValidPhoneNumber(req.Phone) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}
	if validator.IsEmpty(req.Position) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if validator.IsEmpty(req.Department) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "department", Message: "is required"})
	}

	baseSalary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil || baseSalary.IsNegative() {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "base_salary", Message: "must be a non-negative decimal"})
	}

	if len(validationErrs) > 0 {
		return employee.Employee{}, validationErrs
	}

	if _, err := s.hatcheryRepo.GetByID(ctx, req.HatcheryID); err != nil {
		return employee.Employee{}, err
	}

	return s.employeeRepo.Create(ctx, employee.Employee{
		HatcheryID:            req.HatcheryID,
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Position:              req.Position,
		Department:            req.Department,
		BaseSalary:            baseSalary,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *Service) ListByHatchery(ctx context.Context, hatcheryID string) ([]employee.Employee, error) {
	return s.employeeRepo.ListByHatchery(ctx, hatcheryID)
}
