package payroll_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-paie/internal/audit"
	"go-paie/internal/contribution"
	"go-paie/internal/overtime"
	"go-paie/internal/payroll"
	payrollerrors "go-paie/internal/payroll/errors"
	"go-paie/internal/rules"
	"go-paie/internal/tax"
)

type payrollServiceDeps struct {
	service  payroll.Service
	auditLog *audit.MemoryLogger
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	table := rules.Default()
	auditLog := audit.NewMemoryLogger()
	svc := payroll.NewService(
		table,
		tax.NewService(table),
		contribution.NewService(table),
		overtime.NewService(table, zap.NewNop()),
		auditLog,
	)

	return &payrollServiceDeps{service: svc, auditLog: auditLog}
}

func TestPayrollService_CalculatePayroll(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	req := payroll.CalculationRequest{
		EmployeeID:    "EMP-0042",
		Period:        "2026-02",
		BaseSalary:    decimal.NewFromInt(500_000),
		OvertimeHours: decimal.NewFromInt(10),
		Allowances: payroll.Allowances{
			Transport: decimal.NewFromInt(26_000),
			Housing:   decimal.NewFromInt(50_000),
		},
		Deductions: payroll.Deductions{
			SalaryAdvance: decimal.NewFromInt(20_000),
		},
	}

	res, err := deps.service.CalculatePayroll(ctx, req)

	assert.NoError(t, err)
	assert.NotEmpty(t, res.CalculationID)
	assert.Equal(t, "EMP-0042", res.EmployeeID)

	// base 500,000 / 173.33h
	assert.Equal(t, "2884.67", res.HourlyRate.StringFixed(2))
	// 10h x 2884.67 x 1.25
	assert.Equal(t, "36058.38", res.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "76000.00", res.TotalAllowances.StringFixed(2))
	assert.Equal(t, "612058.38", res.GrossSalary.StringFixed(2))

	// annualized gross taxed on the yearly scale, prorated back to the month
	assert.Equal(t, "174553.77", res.IncomeTax.StringFixed(2))
	assert.NotEmpty(t, res.TaxStatements)

	assert.Equal(t, "36723.50", res.Contributions.Retirement.StringFixed(2))
	assert.Equal(t, "42844.09", res.Contributions.SocialSecurity.StringFixed(2))
	assert.Equal(t, "42844.09", res.Contributions.FamilyAllowance.StringFixed(2))
	assert.Equal(t, "122411.68", res.Contributions.Total.StringFixed(2))

	assert.Equal(t, "20000.00", res.TotalDeductions.StringFixed(2))
	assert.Equal(t, "295092.93", res.NetSalary.StringFixed(2))

	// net = gross - tax - contributions - deductions, exactly
	reconstructed := res.GrossSalary.
		Sub(res.IncomeTax).
		Sub(res.Contributions.Total).
		Sub(res.TotalDeductions)
	assert.True(t, reconstructed.Equal(res.NetSalary))
}

func TestPayrollService_ZeroSalary(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	res, err := deps.service.CalculatePayroll(ctx, payroll.CalculationRequest{
		EmployeeID: "EMP-0001",
		Period:     "2026-02",
	})

	assert.NoError(t, err)
	assert.True(t, res.NetSalary.IsZero())
	assert.True(t, res.IncomeTax.IsZero())
}

func TestPayrollService_NegativeNetFails(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	_, err := deps.service.CalculatePayroll(ctx, payroll.CalculationRequest{
		EmployeeID: "EMP-0042",
		Period:     "2026-02",
		BaseSalary: decimal.NewFromInt(100_000),
		Deductions: payroll.Deductions{
			Loan: decimal.NewFromInt(200_000),
		},
	})

	assert.ErrorIs(t, err, payrollerrors.ErrNegativeNetSalary, "negative net must fail, never clamp")
	assert.Empty(t, deps.auditLog.Entries(), "failed calculations are not audited as performed")
}

func TestPayrollService_Validation(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	base := payroll.CalculationRequest{
		EmployeeID: "EMP-0042",
		Period:     "2026-02",
		BaseSalary: decimal.NewFromInt(300_000),
	}

	t.Run("missing employee id", func(t *testing.T) {
		req := base
		req.EmployeeID = ""

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrMissingEmployeeID)
	})

	t.Run("invalid period", func(t *testing.T) {
		req := base
		req.Period = "février 2026"

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)
	})

	t.Run("out of range month", func(t *testing.T) {
		req := base
		req.Period = "2026-13"

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)
	})

	t.Run("negative base salary", func(t *testing.T) {
		req := base
		req.BaseSalary = decimal.NewFromInt(-1)

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrNegativeBaseSalary)
	})

	t.Run("negative allowance", func(t *testing.T) {
		req := base
		req.Allowances.Meal = decimal.NewFromInt(-500)

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrNegativeAllowance)
	})

	t.Run("negative deduction", func(t *testing.T) {
		req := base
		req.Deductions.DelayPenalty = decimal.NewFromInt(-500)

		_, err := deps.service.CalculatePayroll(ctx, req)
		assert.ErrorIs(t, err, payrollerrors.ErrNegativeDeduction)
	})
}

func TestPayrollService_AuditTrail(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	res, err := deps.service.CalculatePayroll(ctx, payroll.CalculationRequest{
		EmployeeID: "EMP-0042",
		Period:     "2026-02",
		BaseSalary: decimal.NewFromInt(500_000),
	})
	assert.NoError(t, err)

	entries := deps.auditLog.Entries()
	if assert.Len(t, entries, 1, "exactly one audit entry per calculation") {
		assert.Equal(t, "PAYROLL_CALCULATION", entries[0].Action)
		assert.Equal(t, res.CalculationID, entries[0].ID)
	}
}

func TestPayrollService_OvertimeWarningsAreAudited(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	res, err := deps.service.CalculatePayroll(ctx, payroll.CalculationRequest{
		EmployeeID:    "EMP-0042",
		Period:        "2026-02",
		BaseSalary:    decimal.NewFromInt(500_000),
		OvertimeHours: decimal.NewFromInt(25),
	})
	assert.NoError(t, err)

	if assert.Len(t, res.Warnings, 1) {
		assert.Contains(t, res.Warnings[0], "weekly")
	}
	entries := deps.auditLog.Entries()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, res.Warnings, entries[0].Warnings)
	}
}
