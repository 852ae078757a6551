package repository

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is matched by every NotFoundError via errors.Is
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID indicates a stored collection holds the same ID more than once
	ErrDuplicateID = errors.New("duplicate record id")
)

// NotFoundError is returned when an operation references an ID that is not in the collection
type NotFoundError struct {
	Entity string
	ID     int
}

// NewNotFoundError creates a NotFoundError for the given entity kind and ID
func NewNotFoundError(entity string, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%d' not found", e.Entity, e.ID)
}

// Is reports a match against ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AsNotFound extracts the NotFoundError from err, if any
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
