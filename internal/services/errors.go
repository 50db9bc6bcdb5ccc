package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound            = errors.New("not found")
	ErrValidationFailed    = errors.New("validation failed")
	ErrProgressUnavailable = errors.New("lesson progress store unavailable")
)

// NotFoundError names the missing resource and the key that was looked up
type NotFoundError struct {
	Resource string
	ID       uint
}

func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// newValidationError wraps validator output so that errors.Is(err, ErrValidationFailed)
// holds and the field details stay reachable with errors.As
func newValidationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}
