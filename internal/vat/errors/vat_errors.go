package vaterrors

import (
	"go-paie/internal/shared/apperror"
)

var (
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"transaction amount cannot be negative",
	)
	ErrNegativeRateOverride = apperror.New(
		apperror.CodeInvalidInput,
		"explicit vat rate cannot be negative",
	)
	ErrMissingTransactionDate = apperror.New(
		apperror.CodeInvalidInput,
		"transaction date is required",
	)
)
