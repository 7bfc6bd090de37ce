package loadable

import (
	"errors"
	"fmt"
)

var (
	// ErrNilAction is returned by WhenLoaded when no action is supplied.
	ErrNilAction = errors.New("action cannot be nil")

	// ErrNilPrototype is returned when a nil host prototype is passed to a
	// registry mutation.
	ErrNilPrototype = errors.New("prototype cannot be nil")

	// ErrNilRule is returned when a nil rule is registered.
	ErrNilRule = errors.New("rule cannot be nil")

	// ErrUnknownParent is returned by AddChild when the parent type has not
	// been declared yet.
	ErrUnknownParent = errors.New("parent type is not declared in the registry")
)

// NotLoadedError indicates that a host failed its readiness checks. Message
// carries the diagnostic from the first failing check and is empty when that
// check supplied no message.
type NotLoadedError struct {
	Message string
}

func (e *NotLoadedError) Error() string {
	if e.Message == "" {
		return "host is not loaded"
	}
	return fmt.Sprintf("host is not loaded: %s", e.Message)
}

func NewNotLoadedError(message string) *NotLoadedError {
	return &NotLoadedError{Message: message}
}

func IsNotLoadedError(err error) bool {
	var e *NotLoadedError
	return errors.As(err, &e)
}
