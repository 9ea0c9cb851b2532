package payrollerrors

import (
	"go-paie/internal/shared/apperror"
)

var (
	ErrMissingEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"employee id is required",
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
	)
	ErrNegativeBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base salary cannot be negative",
	)
	ErrNegativeAllowance = apperror.New(
		apperror.CodeInvalidInput,
		"allowance amounts cannot be negative",
	)
	ErrNegativeDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"deduction amounts cannot be negative",
	)
	ErrNegativeNetSalary = apperror.New(
		apperror.CodeCalculationError,
		"net salary is negative, deductions exceed gross pay",
	)
)
