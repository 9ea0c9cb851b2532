package contributionerrors

import (
	"go-paie/internal/shared/apperror"
)

var (
	ErrNegativeGrossSalary = apperror.New(
		apperror.CodeInvalidInput,
		"gross salary cannot be negative",
	)
)
