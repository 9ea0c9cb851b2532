package ruleserrors

import (
	"go-paie/internal/shared/apperror"
)

var (
	ErrEmptyBrackets = apperror.New(
		apperror.CodeInvalidConfig,
		"tax bracket table is empty",
	)
	ErrBracketGap = apperror.New(
		apperror.CodeInvalidConfig,
		"tax brackets do not cover the income line without gaps",
	)
	ErrBracketOrder = apperror.New(
		apperror.CodeInvalidConfig,
		"tax brackets are not in ascending order",
	)
	ErrBoundedTail = apperror.New(
		apperror.CodeInvalidConfig,
		"last tax bracket must be unbounded",
	)
	ErrFixedAmountMismatch = apperror.New(
		apperror.CodeInvalidConfig,
		"bracket fixed amount does not match cumulative lower-bracket tax",
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidConfig,
		"rate must be between 0 and 1",
	)
	ErrInvalidSalaryCap = apperror.New(
		apperror.CodeInvalidConfig,
		"contribution salary cap must be positive",
	)
	ErrInvalidMonthlyHours = apperror.New(
		apperror.CodeInvalidConfig,
		"monthly reference hours must be positive",
	)
	ErrInvalidMultiplier = apperror.New(
		apperror.CodeInvalidConfig,
		"overtime multiplier must be at least 1",
	)
	ErrMissingCurrency = apperror.New(
		apperror.CodeInvalidConfig,
		"vat local currency is required",
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidConfig,
		"extra holiday date must use YYYY-MM-DD",
	)
)
