package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	leaveService "github.com/hatchhr/hatchhr-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	created      []leave.Leave
	stored       leave.Leave
	getErr       error
	decideResult bool
	decideErr    error
	decidedWith  leave.LeaveStatus
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.Leave) (leave.Leave, error) {
	request.ID = "lv-1"
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.created = append(f.created, request)
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(context.Context, string) (leave.Leave, error) {
	if f.getErr != nil {
		return leave.Leave{}, f.getErr
	}
	return f.stored, nil
}

func (f *fakeLeaveRepo) ListByEmployee(context.Context, string) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByHatchery(context.Context, string) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) Decide(_ context.Context, _ string, status leave.LeaveStatus, _ *string, _ string, _ time.Time) (bool, error) {
	f.decidedWith = status
	return f.decideResult, f.decideErr
}

type fakeEmployeeRepo struct {
	emp    employee.Employee
	getErr error
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	if f.getErr != nil {
		return employee.Employee{}, f.getErr
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) ListByHatchery(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeDispatcher struct {
	events []event.Event
	err    error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, e event.Event) (notification.Notification, error) {
	f.events = append(f.events, e)
	if f.err != nil {
		return notification.Notification{}, f.err
	}
	return notification.Notification{ID: "ntf-1", RecipientID: "admin-1"}, nil
}

func testEmployee() employee.Employee {
	return employee.Employee{ID: "emp-1", HatcheryID: "hat-1", Name: "Dewi Lestari"}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("rejects incomplete request", func(t *testing.T) {
		t.Parallel()
		svc := leaveService.NewService(&fakeLeaveRepo{}, &fakeEmployeeRepo{}, &fakeDispatcher{})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{})

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		details := validationErrs.ToMap()
		assert.Contains(t, details, "employee_id")
		assert.Contains(t, details, "reason")
		assert.Contains(t, details, "start_date")
		assert.Contains(t, details, "end_date")
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		t.Parallel()
		svc := leaveService.NewService(&fakeLeaveRepo{}, &fakeEmployeeRepo{}, &fakeDispatcher{})

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1",
			Reason:     "family matter",
			StartDate:  "2025-04-03",
			EndDate:    "2025-04-01",
		})

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Contains(t, validationErrs.ToMap(), "end_date")
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		t.Parallel()
		svc := leaveService.NewService(
			&fakeLeaveRepo{},
			&fakeEmployeeRepo{getErr: employee.ErrEmployeeNotFound},
			&fakeDispatcher{},
		)

		_, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "ghost",
			Reason:     "family matter",
			StartDate:  "2025-04-01",
			EndDate:    "2025-04-03",
		})

		require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("creates pending request and notifies admin", func(t *testing.T) {
		t.Parallel()
		leaveRepo := &fakeLeaveRepo{}
		dispatcher := &fakeDispatcher{}
		svc := leaveService.NewService(leaveRepo, &fakeEmployeeRepo{emp: testEmployee()}, dispatcher)

		created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1",
			Reason:     "family matter",
			StartDate:  "2025-04-01",
			EndDate:    "2025-04-03",
		})

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusPending, created.Status)
		require.Len(t, dispatcher.events, 1)
		assert.Equal(t, event.KindLeaveSubmitted, dispatcher.events[0].Kind)
		assert.Equal(t, "hat-1", dispatcher.events[0].HatcheryID)
		assert.Equal(t, created.ID, dispatcher.events[0].RelatedID)
	})

	t.Run("keeps the stored request when dispatch is unroutable", func(t *testing.T) {
		t.Parallel()
		leaveRepo := &fakeLeaveRepo{}
		svc := leaveService.NewService(
			leaveRepo,
			&fakeEmployeeRepo{emp: testEmployee()},
			&fakeDispatcher{err: dispatch.ErrUnroutableEvent},
		)

		created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1",
			Reason:     "family matter",
			StartDate:  "2025-04-01",
			EndDate:    "2025-04-03",
		})

		require.ErrorIs(t, err, dispatch.ErrUnroutableEvent)
		assert.Equal(t, "lv-1", created.ID)
		require.Len(t, leaveRepo.created, 1)
	})
}

func TestService_Decide(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	decidedAt := time.Now()
	approvedLeave := leave.Leave{
		ID:         "lv-1",
		EmployeeID: "emp-1",
		Status:     leave.LeaveStatusApproved,
		DecidedAt:  &decidedAt,
	}

	t.Run("rejects a decision outside the enum", func(t *testing.T) {
		t.Parallel()
		svc := leaveService.NewService(&fakeLeaveRepo{}, &fakeEmployeeRepo{}, &fakeDispatcher{})

		for _, decision := range []string{"maybe", "pending", "", "Approved"} {
			_, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Decision: decision}, "admin-1")
			require.ErrorIs(t, err, leave.ErrInvalidTransition, decision)
		}
	})

	t.Run("reports an already decided request with its current state", func(t *testing.T) {
		t.Parallel()
		leaveRepo := &fakeLeaveRepo{decideResult: false, stored: approvedLeave}
		dispatcher := &fakeDispatcher{}
		svc := leaveService.NewService(leaveRepo, &fakeEmployeeRepo{emp: testEmployee()}, dispatcher)

		current, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{Decision: "rejected"}, "admin-1")

		require.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)
		assert.Equal(t, leave.LeaveStatusApproved, current.Status)
		assert.Empty(t, dispatcher.events)
	})

	t.Run("approves a pending request and notifies", func(t *testing.T) {
		t.Parallel()
		leaveRepo := &fakeLeaveRepo{decideResult: true, stored: approvedLeave}
		dispatcher := &fakeDispatcher{}
		svc := leaveService.NewService(leaveRepo, &fakeEmployeeRepo{emp: testEmployee()}, dispatcher)

		comments := "enjoy"
		updated, err := svc.Decide(ctx, "lv-1", leave.DecideLeaveRequest{
			Decision: "approved",
			Comments: &comments,
		}, "admin-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusApproved, updated.Status)
		assert.Equal(t, leave.LeaveStatusApproved, leaveRepo.decidedWith)
		require.Len(t, dispatcher.events, 1)
		assert.Equal(t, event.KindLeaveDecided, dispatcher.events[0].Kind)
		assert.Equal(t, "approved", dispatcher.events[0].Payload["decision"])
		assert.Equal(t, "enjoy", dispatcher.events[0].Payload["comments"])
	})

	t.Run("surfaces a missing request", func(t *testing.T) {
		t.Parallel()
		leaveRepo := &fakeLeaveRepo{decideResult: false, getErr: leave.ErrLeaveNotFound}
		svc := leaveService.NewService(leaveRepo, &fakeEmployeeRepo{}, &fakeDispatcher{})

		_, err := svc.Decide(ctx, "ghost", leave.DecideLeaveRequest{Decision: "approved"}, "admin-1")

		require.ErrorIs(t, err, leave.ErrLeaveNotFound)
	})
}
