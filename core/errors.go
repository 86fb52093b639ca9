package core

import "github.com/pkg/errors"

// ErrNotFound is returned by lookups that matched nothing.
var ErrNotFound = errors.New("not found")

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is rendered back to the client as a plain message (HTTP 200) without any state change.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}
