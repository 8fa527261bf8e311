package employee

import (
	"errors"

	employeeerrors "github.com/viotsoft/Altiq-hr-AI/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrDuplicateID) {
		return employeeerrors.ErrEmployeeIDExists
	}
	if errors.Is(err, ErrNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
