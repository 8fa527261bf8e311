package triperrors

import (
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
)

var (
	ErrTripNotFound = apperror.New(
		apperror.CodeNotFound,
		"Trip not found",
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidRange,
		"start_date must be before end_date",
	)

	ErrTripNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"Trip cannot be cancelled once completed or cancelled",
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Status transition not allowed",
	)

	ErrExpenseTripNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"Trip for this expense does not exist",
	)
)
