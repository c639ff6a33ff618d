package services

import "fmt"

// NotFoundError is returned when a referenced course does not exist.
// It aborts the whole batch it occurred in.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Name)
}

// ConflictError is returned when a course with the same name is already
// linked to the user.
type ConflictError struct {
	Resource string
	Name     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with name '%s' already exists", e.Resource, e.Name)
}

// ValidationError rejects malformed input before any datastore interaction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StorageError wraps a datastore failure. By the time it is returned the
// enclosing transaction has been rolled back in full.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage error: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
