package apperror

const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicateKey     = "DUPLICATE_KEY"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInvalidRange     = "INVALID_RANGE"
	CodeConflict         = "CONFLICT"
	CodeInvalidState     = "INVALID_STATE"
	CodeInternalError    = "INTERNAL_ERROR"

	// Declined business outcome, not a failure. Carried on result values
	// rather than on errors.
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
)
