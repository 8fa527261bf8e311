package meetingerrors

import (
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
)

var (
	ErrInvalidDateTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid datetime format; use ISO format",
	)
	ErrMeetingConflict = apperror.New(
		apperror.CodeConflict,
		"Employee already has a meeting at this time",
	)
	ErrMeetingNotFound = apperror.New(
		apperror.CodeNotFound,
		"No matching meeting to cancel",
	)
)
