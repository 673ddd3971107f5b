package engine

import "fmt"

// ErrorKind categorizes engine errors.
type ErrorKind int

const (
	// ErrInvalidMatcher indicates a malformed declarative matcher tree.
	ErrInvalidMatcher ErrorKind = iota
	// ErrLinkMismatch indicates a metric-to-condition link whose matcher
	// lists differ in length.
	ErrLinkMismatch
	// ErrTypeMismatch indicates arithmetic between incompatible value kinds.
	ErrTypeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidMatcher:
		return "invalid matcher"
	case ErrLinkMismatch:
		return "link mismatch"
	case ErrTypeMismatch:
		return "type mismatch"
	default:
		return "unknown error"
	}
}

// Error represents an error in engine operations.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a new Error wrapping an existing error.
func WrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}
