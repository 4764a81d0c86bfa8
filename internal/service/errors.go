package service

import (
	"errors"

	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

func isAlreadyInProgress(err error) bool {
	return errors.Is(err, appErrors.ErrAlreadyInProgress)
}

func isValidation(err error) bool {
	return errors.Is(err, appErrors.ErrValidation)
}
