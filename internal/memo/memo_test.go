package memo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-paie/internal/memo"
	"go-paie/internal/payroll"
)

type fakePayrollService struct {
	calls              int
	calculatePayrollFn func(ctx context.Context, req payroll.CalculationRequest) (payroll.Result, error)
}

func (f *fakePayrollService) CalculatePayroll(ctx context.Context, req payroll.CalculationRequest) (payroll.Result, error) {
	f.calls++
	if f.calculatePayrollFn != nil {
		return f.calculatePayrollFn(ctx, req)
	}
	return payroll.Result{EmployeeID: req.EmployeeID, NetSalary: decimal.NewFromInt(100)}, nil
}

func request(employeeID string) payroll.CalculationRequest {
	return payroll.CalculationRequest{
		EmployeeID: employeeID,
		Period:     "2026-02",
		BaseSalary: decimal.NewFromInt(500_000),
	}
}

func TestMemoService_CachesIdenticalRequests(t *testing.T) {
	ctx := context.Background()
	inner := &fakePayrollService{}
	svc := memo.NewService(inner)

	first, err := svc.CalculatePayroll(ctx, request("EMP-0042"))
	assert.NoError(t, err)

	second, err := svc.CalculatePayroll(ctx, request("EMP-0042"))
	assert.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "identical request must not recompute")
	assert.Equal(t, first, second)
}

func TestMemoService_DifferentInputsMiss(t *testing.T) {
	ctx := context.Background()
	inner := &fakePayrollService{}
	svc := memo.NewService(inner)

	_, err := svc.CalculatePayroll(ctx, request("EMP-0042"))
	assert.NoError(t, err)

	other := request("EMP-0042")
	other.BaseSalary = decimal.NewFromInt(600_000)
	_, err = svc.CalculatePayroll(ctx, other)
	assert.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestMemoService_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &fakePayrollService{
		calculatePayrollFn: func(ctx context.Context, req payroll.CalculationRequest) (payroll.Result, error) {
			return payroll.Result{}, errors.New("bad input")
		},
	}
	svc := memo.NewService(inner)

	_, err := svc.CalculatePayroll(ctx, request("EMP-0042"))
	assert.Error(t, err)
	_, err = svc.CalculatePayroll(ctx, request("EMP-0042"))
	assert.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestMemoService_Invalidate(t *testing.T) {
	ctx := context.Background()
	inner := &fakePayrollService{}
	svc := memo.NewService(inner)

	t.Run("single request", func(t *testing.T) {
		_, err := svc.CalculatePayroll(ctx, request("EMP-0042"))
		assert.NoError(t, err)

		svc.Invalidate(request("EMP-0042"))

		_, err = svc.CalculatePayroll(ctx, request("EMP-0042"))
		assert.NoError(t, err)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("reset drops everything", func(t *testing.T) {
		_, err := svc.CalculatePayroll(ctx, request("EMP-0001"))
		assert.NoError(t, err)
		_, err = svc.CalculatePayroll(ctx, request("EMP-0002"))
		assert.NoError(t, err)
		callsBefore := inner.calls

		svc.Reset()

		_, err = svc.CalculatePayroll(ctx, request("EMP-0001"))
		assert.NoError(t, err)
		_, err = svc.CalculatePayroll(ctx, request("EMP-0002"))
		assert.NoError(t, err)
		assert.Equal(t, callsBefore+2, inner.calls)
	})
}
