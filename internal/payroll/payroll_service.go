package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-paie/internal/audit"
	"go-paie/internal/contribution"
	"go-paie/internal/overtime"
	payrollerrors "go-paie/internal/payroll/errors"
	"go-paie/internal/rules"
	"go-paie/internal/tax"
)

var twelve = decimal.NewFromInt(12)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CalculatePayroll(ctx context.Context, req CalculationRequest) (Result, error)
}

type service struct {
	monthlyHours decimal.Decimal
	tax          tax.Service
	contribution contribution.Service
	overtime     overtime.Service
	auditLog     audit.Logger
}

func NewService(
	table *rules.Table,
	taxSvc tax.Service,
	contributionSvc contribution.Service,
	overtimeSvc overtime.Service,
	auditLog audit.Logger,
) Service {
	return &service{
		monthlyHours: table.MonthlyHours,
		tax:          taxSvc,
		contribution: contributionSvc,
		overtime:     overtimeSvc,
		auditLog:     auditLog,
	}
}

// CalculatePayroll runs the full monthly sequence: hourly rate, overtime,
// allowances, gross, annualized income tax prorated back to the month,
// capped contributions, deductions, net. A negative net salary is a hard
// failure, never clamped to zero.
func (s *service) CalculatePayroll(ctx context.Context, req CalculationRequest) (Result, error) {
	if err := validateRequest(req); err != nil {
		return Result{}, err
	}

	res := Result{
		CalculationID: uuid.New().String(),
		EmployeeID:    req.EmployeeID,
		Period:        req.Period,
		BaseSalary:    req.BaseSalary,
		OvertimeHours: req.OvertimeHours,
	}

	res.HourlyRate = req.BaseSalary.DivRound(s.monthlyHours, 2)

	overtimeAmount, overtimeWarnings, err := s.overtime.ComputeRegularOvertime(req.OvertimeHours, res.HourlyRate)
	if err != nil {
		return Result{}, err
	}
	res.OvertimeAmount = overtimeAmount
	res.Warnings = overtimeWarnings

	res.TotalAllowances = req.Allowances.Total()
	res.GrossSalary = req.BaseSalary.Add(res.OvertimeAmount).Add(res.TotalAllowances)

	// Monthly tax is the annualized tax prorated back, not a monthly scale.
	taxRes := s.tax.ComputeIncomeTax(res.GrossSalary.Mul(twelve))
	res.IncomeTax = taxRes.Tax.DivRound(twelve, 2)
	res.TaxStatements = taxRes.Statements

	contributions, err := s.contribution.ComputeAllContributions(res.GrossSalary)
	if err != nil {
		return Result{}, err
	}
	res.Contributions = contributions

	res.TotalDeductions = req.Deductions.Total()
	res.NetSalary = res.GrossSalary.
		Sub(res.IncomeTax).
		Sub(res.Contributions.Total).
		Sub(res.TotalDeductions)

	if res.NetSalary.IsNegative() {
		return Result{}, payrollerrors.ErrNegativeNetSalary
	}

	s.auditLog.Log(ctx, audit.Entry{
		ID:        res.CalculationID,
		Action:    "PAYROLL_CALCULATION",
		Inputs:    req,
		Outputs:   res,
		Warnings:  res.Warnings,
		Timestamp: time.Now().UTC(),
	})

	return res, nil
}

func validateRequest(req CalculationRequest) error {
	if req.EmployeeID == "" {
		return payrollerrors.ErrMissingEmployeeID
	}
	if _, err := time.Parse("2006-01", req.Period); err != nil {
		return payrollerrors.ErrInvalidPeriodFormat
	}
	if req.BaseSalary.IsNegative() {
		return payrollerrors.ErrNegativeBaseSalary
	}
	if req.Allowances.anyNegative() {
		return payrollerrors.ErrNegativeAllowance
	}
	if req.Deductions.anyNegative() {
		return payrollerrors.ErrNegativeDeduction
	}
	return nil
}
