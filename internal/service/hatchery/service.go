package hatchery

import (
	"context"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/hatchery"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
)

type Service struct {
	repo hatchery.Repository
}

func NewService(repo hatchery.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req hatchery.CreateHatcheryRequest) (hatchery.Hatchery, error) {
	var validationErrs validator.ValidationErrors

	if validator.IsEmpty(req.Name) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(req.RegistrationNumber) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "registration_number", Message: "is required"})
	} else if !validator.IsValidRegistrationNumber(req.RegistrationNumber) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "registration_number", Message: "must match the XX-NNNN format"})
	}
	if validator.IsEmpty(req.AdminUserID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "admin_user_id", Message: "is required"})
	}

	if len(validationErrs) > 0 {
		return hatchery.Hatchery{}, validationErrs
	}

	return s.repo.Create(ctx, hatchery.Hatchery{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		AdminUserID:        req.AdminUserID,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (hatchery.Hatchery, error) {
	return s.repo.GetByID(ctx, id)
}
