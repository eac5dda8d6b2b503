package store

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrValidation matches every ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError is returned when the content model rejects a record. Its
// message is meant to be shown to the person who triggered the save.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
