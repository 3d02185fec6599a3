package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db database.Querier
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db database.Querier) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.start_date, l.end_date, l.reason, l.run_id,
	l.status, l.admin_comments, l.decided_by, l.decided_at,
	l.created_at, l.updated_at, e.name
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	var status string
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Reason, &l.RunID,
		&status, &l.AdminComments, &l.DecidedBy, &l.DecidedAt,
		&l.CreatedAt, &l.UpdatedAt, &l.EmployeeName,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	l.Status = leave.LeaveStatus(status)
	return l, nil
}

func (r *leaveRepository) Create(ctx context.Context, request leave.Leave) (leave.Leave, error) {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (id, employee_id, start_date, end_date, reason, run_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, start_date, end_date, reason, run_id,
			status, admin_comments, decided_by, decided_at, created_at, updated_at
	`

	var created leave.Leave
	var status string
	err := r.db.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate,
		request.Reason, request.RunID, string(leave.LeaveStatusPending),
	).Scan(
		&created.ID, &created.EmployeeID, &created.StartDate, &created.EndDate,
		&created.Reason, &created.RunID, &status, &created.AdminComments,
		&created.DecidedBy, &created.DecidedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.Status = leave.LeaveStatus(status)
	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`, leaveColumns)

	l, err := scanLeave(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.created_at DESC
	`, leaveColumns)

	return r.queryLeaves(ctx, query, employeeID)
}

func (r *leaveRepository) ListByHatchery(ctx context.Context, hatcheryID string) ([]leave.Leave, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE e.hatchery_id = $1
		ORDER BY l.created_at DESC
	`, leaveColumns)

	return r.queryLeaves(ctx, query, hatcheryID)
}

func (r *leaveRepository) queryLeaves(ctx context.Context, query string, arg interface{}) ([]leave.Leave, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// Decide is the only write path out of pending. The status predicate makes
// the read-modify-write an optimistic check: of two concurrent deciders
// exactly one update lands.
func (r *leaveRepository) Decide(ctx context.Context, id string, status leave.LeaveStatus, comments *string, decidedBy string, decidedAt time.Time) (bool, error) {
	query := `
		UPDATE leaves
		SET status = $2, admin_comments = $3, decided_by = $4, decided_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
	`

	tag, err := r.db.Exec(ctx, query,
		id, string(status), comments, decidedBy, decidedAt,
		string(leave.LeaveStatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to decide leave request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
