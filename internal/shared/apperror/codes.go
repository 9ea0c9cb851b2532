package apperror

const (
	// Caller contract violations
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"

	// Invariant violations surfaced by a calculation
	CodeCalculationError = "CALCULATION_ERROR"

	// Rule table / configuration failures, raised at load time
	CodeInvalidConfig = "INVALID_CONFIG"

	CodeInternalError = "INTERNAL_ERROR"
)
