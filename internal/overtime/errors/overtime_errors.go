package overtimeerrors

import (
	"go-paie/internal/shared/apperror"
)

var (
	ErrNegativeHourlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"hourly rate cannot be negative",
	)
)
