package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db database.Querier
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db database.Querier) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, hatchery_id, name, email, phone, position, department,
			base_salary, emergency_contact_name, emergency_contact_phone
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, hatchery_id, name, email, phone, position, department,
			base_salary, emergency_contact_name, emergency_contact_phone,
			created_at, updated_at
	`

	var created employee.Employee
	err := r.db.QueryRow(ctx, query,
		emp.ID, emp.HatcheryID, emp.Name, emp.Email, emp.Phone,
		emp.Position, emp.Department, emp.BaseSalary,
		emp.EmergencyContactName, emp.EmergencyContactPhone,
	).Scan(
		&created.ID, &created.HatcheryID, &created.Name, &created.Email,
		&created.Phone, &created.Position, &created.Department,
		&created.BaseSalary, &created.EmergencyContactName,
		&created.EmergencyContactPhone, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT id, hatchery_id, name, email, phone, position, department,
			base_salary, emergency_contact_name, emergency_contact_phone,
			created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.HatcheryID, &emp.Name, &emp.Email, &emp.Phone,
		&emp.Position, &emp.Department, &emp.BaseSalary,
		&emp.EmergencyContactName, &emp.EmergencyContactPhone,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) ListByHatchery(ctx context.Context, hatcheryID string) ([]employee.Employee, error) {
	query := `
		SELECT id, hatchery_id, name, email, phone, position, department,
			base_salary, emergency_contact_name, emergency_contact_phone,
			created_at, updated_at
		FROM employees
		WHERE hatchery_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, hatcheryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.HatcheryID, &emp.Name, &emp.Email, &emp.Phone,
			&emp.Position, &emp.Department, &emp.BaseSalary,
			&emp.EmergencyContactName, &emp.EmergencyContactPhone,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
