package leaveerrors

import (
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
)

var (
	ErrLeaveAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee ID not found",
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
	)
)
