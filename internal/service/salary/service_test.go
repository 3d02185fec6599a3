package salary_test

import (
	"context"
	"testing"
	"time"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/employee"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/event"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/notification"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/hatchhr/hatchhr-backend-go/internal/service/dispatch"
	salaryService "github.com/hatchhr/hatchhr-backend-go/internal/service/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryRepo struct {
	created   []salary.Salary
	createErr error
	deleted   []string
	deleteErr error
}

func (f *fakeSalaryRepo) Create(_ context.Context, s salary.Salary) (salary.Salary, error) {
	if f.createErr != nil {
		return salary.Salary{}, f.createErr
	}
	s.ID = "sal-1"
	s.CreatedAt = time.Now()
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSalaryRepo) GetByID(context.Context, string) (salary.Salary, error) {
	return salary.Salary{}, salary.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) ListActiveByEmployee(context.Context, string) ([]salary.Salary, error) {
	return nil, nil
}

func (f *fakeSalaryRepo) SoftDelete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
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
	return notification.Notification{ID: "ntf-1"}, nil
}

func validRequest() salary.PaySalaryRequest {
	return salary.PaySalaryRequest{
		EmployeeID:  "emp-1",
		Amount:      "5000000",
		Month:       3,
		Year:        2025,
		Bonus:       "250000",
		Deductions:  "100000",
		PaymentDate: "2025-03-28",
	}
}

func TestService_Pay(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	emp := employee.Employee{ID: "emp-1", HatcheryID: "hat-1", Name: "Dewi Lestari"}

	t.Run("rejects invalid amounts and period", func(t *testing.T) {
		t.Parallel()
		svc := salaryService.NewService(&fakeSalaryRepo{}, &fakeEmployeeRepo{emp: emp}, &fakeDispatcher{})

		req := validRequest()
		req.Amount = "-10"
		req.Month = 13
		req.Bonus = "abc"
		req.PaymentDate = "28-03-2025"

		_, err := svc.Pay(ctx, req, "admin-1")

		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		details := validationErrs.ToMap()
		assert.Contains(t, details, "amount")
		assert.Contains(t, details, "month")
		assert.Contains(t, details, "bonus")
		assert.Contains(t, details, "payment_date")
	})

	t.Run("computes net amount and notifies", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{}
		dispatcher := &fakeDispatcher{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{emp: emp}, dispatcher)

		created, err := svc.Pay(ctx, validRequest(), "admin-1")

		require.NoError(t, err)
		assert.True(t, created.NetAmount.Equal(decimal.NewFromInt(5150000)),
			"net = %s", created.NetAmount)
		assert.Equal(t, "admin-1", created.PaidBy)

		require.Len(t, dispatcher.events, 1)
		e := dispatcher.events[0]
		assert.Equal(t, event.KindSalaryPaid, e.Kind)
		assert.Equal(t, "hat-1", e.HatcheryID)
		assert.Equal(t, "5150000", e.Payload["net_amount"])
	})

	t.Run("defaults empty bonus and deductions to zero", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{emp: emp}, &fakeDispatcher{})

		req := validRequest()
		req.Bonus = ""
		req.Deductions = ""

		created, err := svc.Pay(ctx, req, "admin-1")

		require.NoError(t, err)
		assert.True(t, created.Bonus.IsZero())
		assert.True(t, created.Deductions.IsZero())
		assert.True(t, created.NetAmount.Equal(decimal.NewFromInt(5000000)))
	})

	t.Run("propagates a duplicate period", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{createErr: salary.ErrDuplicateSalary}
		dispatcher := &fakeDispatcher{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{emp: emp}, dispatcher)

		_, err := svc.Pay(ctx, validRequest(), "admin-1")

		require.ErrorIs(t, err, salary.ErrDuplicateSalary)
		assert.Empty(t, dispatcher.events)
	})

	t.Run("rejects unknown employee before writing", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{getErr: employee.ErrEmployeeNotFound}, &fakeDispatcher{})

		_, err := svc.Pay(ctx, validRequest(), "admin-1")

		require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
		assert.Empty(t, repo.created)
	})

	t.Run("keeps the stored record when dispatch fails", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{emp: emp}, &fakeDispatcher{err: dispatch.ErrUnroutableEvent})

		created, err := svc.Pay(ctx, validRequest(), "admin-1")

		require.ErrorIs(t, err, dispatch.ErrUnroutableEvent)
		assert.Equal(t, "sal-1", created.ID)
		require.Len(t, repo.created, 1)
	})
}

func TestService_SoftDelete(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("delegates to the repository", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{}, &fakeDispatcher{})

		require.NoError(t, svc.SoftDelete(ctx, "sal-1"))
		assert.Equal(t, []string{"sal-1"}, repo.deleted)
	})

	t.Run("surfaces missing record", func(t *testing.T) {
		t.Parallel()
		repo := &fakeSalaryRepo{deleteErr: salary.ErrSalaryNotFound}
		svc := salaryService.NewService(repo, &fakeEmployeeRepo{}, &fakeDispatcher{})

		require.ErrorIs(t, svc.SoftDelete(ctx, "ghost"), salary.ErrSalaryNotFound)
	})
}
