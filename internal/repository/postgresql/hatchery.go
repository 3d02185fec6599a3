package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/hatchery"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type hatcheryRepository struct {
	db database.Querier
}

// NewHatcheryRepository creates a new hatchery repository
func NewHatcheryRepository(db database.Querier) hatchery.Repository {
	return &hatcheryRepository{db: db}
}

func (r *hatcheryRepository) Create(ctx context.Context, h hatchery.Hatchery) (hatchery.Hatchery, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	query := `
		INSERT INTO hatcheries (id, name, registration_number, address, admin_user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, registration_number, address, admin_user_id, created_at, updated_at
	`

	var created hatchery.Hatchery
	err := r.db.QueryRow(ctx, query,
		h.ID, h.Name, h.RegistrationNumber, h.Address, h.AdminUserID,
	).Scan(
		&created.ID, &created.Name, &created.RegistrationNumber,
		&created.Address, &created.AdminUserID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			switch pgErr.ConstraintName {
			case "uk_hatcheries_registration_number":
				return hatchery.Hatchery{}, hatchery.ErrRegistrationNumberExists
			case "uk_hatcheries_name":
				return hatchery.Hatchery{}, hatchery.ErrHatcheryNameExists
			}
		}
		return hatchery.Hatchery{}, fmt.Errorf("failed to create hatchery: %w", err)
	}

	return created, nil
}

func (r *hatcheryRepository) GetByID(ctx context.Context, id string) (hatchery.Hatchery, error) {
	query := `
		SELECT id, name, registration_number, address, admin_user_id, created_at, updated_at
		FROM hatcheries
		WHERE id = $1
	`

	var h hatchery.Hatchery
	err := r.db.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.RegistrationNumber, &h.Address, &h.AdminUserID,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return hatchery.Hatchery{}, hatchery.ErrHatcheryNotFound
		}
		return hatchery.Hatchery{}, fmt.Errorf("failed to get hatchery: %w", err)
	}

	return h, nil
}

func (r *hatcheryRepository) GetAdminID(ctx context.Context, hatcheryID string) (string, error) {
	query := `SELECT admin_user_id FROM hatcheries WHERE id = $1`

	var adminID *string
	err := r.db.QueryRow(ctx, query, hatcheryID).Scan(&adminID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", hatchery.ErrHatcheryNotFound
		}
		return "", fmt.Errorf("failed to get hatchery admin: %w", err)
	}

	if adminID == nil || *adminID == "" {
		return "", hatchery.ErrHatcheryAdminNotConfigured
	}

	return *adminID, nil
}
