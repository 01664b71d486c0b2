package dashgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors shared by the loaders and the generator.
var (
	// ErrNotFound is returned when a requested model or attribute does not exist.
	ErrNotFound = errors.New("dashgen: not found")

	// ErrUnsupported is returned when a schema source or value kind is not supported.
	ErrUnsupported = errors.New("dashgen: unsupported")
)

// NotFoundError represents an error when a model (or one of its members)
// cannot be resolved by the schema provider.
type NotFoundError struct {
	label string
	name  string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.name != "" {
		return fmt.Sprintf("dashgen: %s %q not found", e.label, e.name)
	}
	return fmt.Sprintf("dashgen: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the kind of the missing object (e.g. "model").
func (e *NotFoundError) Label() string {
	return e.label
}

// Name returns the name that was looked up, if available.
func (e *NotFoundError) Name() string {
	return e.name
}

// NewNotFoundErrorWithName returns a new NotFoundError with the name that was looked up.
func NewNotFoundErrorWithName(label, name string) *NotFoundError {
	return &NotFoundError{label: label, name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}
