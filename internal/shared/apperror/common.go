package apperror

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)
)

// RequiredField builds a config validation error for a missing field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidConfig, field+" is required")
}

// InvalidField builds a config validation error for a malformed field.
func InvalidField(field string) *AppError {
	return New(CodeInvalidConfig, field+" is invalid")
}
