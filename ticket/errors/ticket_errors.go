package ticketerrors

import (
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
)

var (
	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ticket not found",
	)
)
