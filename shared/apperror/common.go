package apperror

import "fmt"

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)
)

// RequiredField builds the "<Field> is required" validation error.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField builds the "<Field> is invalid" validation error.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}
