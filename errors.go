package azurestorage

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionNotFound is returned when no environment declaration matches a
	// requested connection name, or the matched connection has no usable _URL value.
	// The concrete error carries the requested name; match with errors.Is.
	ErrConnectionNotFound = errors.New("connection not found")

	// ErrNoContainerDefined is returned when container resolution yields no value
	// from either the caller-supplied override or the _CONTAINER variable.
	ErrNoContainerDefined = errors.New("no container defined")

	// ErrInvalidOptionsSource is returned by the factory builders when the supplied
	// options source is neither a resolver function nor an options record.
	ErrInvalidOptionsSource = errors.New("invalid options source")
)

// ConnectionNotFoundError identifies the connection name that failed to resolve.
type ConnectionNotFoundError struct {
	Name string
}

// Error returns a string representation of the error
func (e *ConnectionNotFoundError) Error() string {
	return fmt.Sprintf("connection %s not found", e.Name)
}

// Is reports whether target is ErrConnectionNotFound
func (e *ConnectionNotFoundError) Is(target error) bool {
	return target == ErrConnectionNotFound
}
