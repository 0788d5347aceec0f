package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound covers both a missing id and a row outside the caller's
	// ownership scope, so a regular user cannot probe for other users' rows.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials never reveals which of the two fields was wrong.
	ErrInvalidCredentials = errors.New("Invalid username or password.")
)

// ValidationErrors carries one human-readable message per invalid field.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// AsValidation unwraps err into per-field messages, if it is one.
func AsValidation(err error) (ValidationErrors, bool) {
	var verr ValidationErrors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
