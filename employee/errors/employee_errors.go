package employeeerrors

import (
	"github.com/viotsoft/Altiq-hr-AI/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
	)
	ErrEmployeeIDExists = apperror.New(
		apperror.CodeDuplicateKey,
		"Employee ID already exists",
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"Manager ID does not exist",
	)
)
