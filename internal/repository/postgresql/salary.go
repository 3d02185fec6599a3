package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type salaryRepository struct {
	db database.Querier
}

// NewSalaryRepository creates a new salary repository
func NewSalaryRepository(db database.Querier) salary.Repository {
	return &salaryRepository{db: db}
}

// Create inserts the record. Uniqueness of the active (employee, month,
// year) tuple is the partial index uk_salaries_employee_period, so the
// check is atomic with the insert and concurrent payers race safely.
func (r *salaryRepository) Create(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salaries (
			id, employee_id, amount, month, year, bonus, deductions,
			net_amount, payment_date, notes, paid_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, employee_id, amount, month, year, bonus, deductions,
			net_amount, payment_date, notes, paid_by, deleted_at,
			created_at, updated_at
	`

	var created salary.Salary
	err := r.db.QueryRow(ctx, query,
		s.ID, s.EmployeeID, s.Amount, s.Month, s.Year, s.Bonus,
		s.Deductions, s.NetAmount, s.PaymentDate, s.Notes, s.PaidBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.Month,
		&created.Year, &created.Bonus, &created.Deductions,
		&created.NetAmount, &created.PaymentDate, &created.Notes,
		&created.PaidBy, &created.DeletedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return salary.Salary{}, salary.ErrDuplicateSalary
		}
		return salary.Salary{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return created, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	// Soft-deleted records stay reachable by ID for audit.
	query := `
		SELECT id, employee_id, amount, month, year, bonus, deductions,
			net_amount, payment_date, notes, paid_by, deleted_at,
			created_at, updated_at
		FROM salaries
		WHERE id = $1
	`

	var s salary.Salary
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.Amount, &s.Month, &s.Year, &s.Bonus,
		&s.Deductions, &s.NetAmount, &s.PaymentDate, &s.Notes, &s.PaidBy,
		&s.DeletedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) ListActiveByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	query := `
		SELECT id, employee_id, amount, month, year, bonus, deductions,
			net_amount, payment_date, notes, paid_by, deleted_at,
			created_at, updated_at
		FROM salaries
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY year DESC, month DESC
	`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary records: %w", err)
	}
	defer rows.Close()

	var salaries []salary.Salary
	for rows.Next() {
		var s salary.Salary
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Amount, &s.Month, &s.Year, &s.Bonus,
			&s.Deductions, &s.NetAmount, &s.PaymentDate, &s.Notes, &s.PaidBy,
			&s.DeletedAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, rows.Err()
}

func (r *salaryRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE salaries
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete salary record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}
