package dimension

import (
	"errors"

	"github.com/usetero/dimension-go/internal/engine"
)

// Re-export error types from internal/engine.
type (
	Error     = engine.Error
	ErrorKind = engine.ErrorKind
)

// Error kinds.
const (
	ErrInvalidMatcher = engine.ErrInvalidMatcher
	ErrLinkMismatch   = engine.ErrLinkMismatch
	ErrTypeMismatch   = engine.ErrTypeMismatch
)

// Error constructors.
var (
	NewError  = engine.NewError
	WrapError = engine.WrapError
)

// IsInvalidMatcher returns true if the error is an invalid matcher error.
func IsInvalidMatcher(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrInvalidMatcher
}

// IsLinkMismatch returns true if the error is a link mismatch error.
func IsLinkMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrLinkMismatch
}

// IsTypeMismatch returns true if the error is a type mismatch error.
func IsTypeMismatch(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrTypeMismatch
}
