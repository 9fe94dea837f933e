package service

import (
	"errors"
	"fmt"
)

// Error kinds. Operations wrap these with resource-specific messages;
// callers match with errors.Is and read the message with Error().
var (
	// ErrNotFound marks lookups whose subject does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks resources that exist but are not usable,
	// such as a model that is not loaded.
	ErrUnavailable = errors.New("unavailable")
)

// opError carries an exact client-facing message while staying matchable
// against its kind via errors.Is.
type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Unwrap() error { return e.kind }

func notFound(format string, args ...any) error {
	return &opError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func unavailable(format string, args ...any) error {
	return &opError{kind: ErrUnavailable, msg: fmt.Sprintf(format, args...)}
}
