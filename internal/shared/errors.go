package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrValidation indicates the request payload was rejected.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID indicates a malformed resource key in the path.
	ErrInvalidID = errors.New("invalid ID")
)

// Error is a domain failure carrying a caller-facing message. It unwraps to
// one of the sentinel kinds above so the HTTP layer can pick a status code.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" && e.Kind != nil {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound builds an ErrNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Duplicate builds an ErrDuplicate error with a formatted message.
func Duplicate(format string, args ...any) error {
	return &Error{Kind: ErrDuplicate, Message: fmt.Sprintf(format, args...)}
}

// Invalid builds an ErrValidation error with a formatted message.
func Invalid(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// InvalidID builds an ErrInvalidID error with a formatted message.
func InvalidID(format string, args ...any) error {
	return &Error{Kind: ErrInvalidID, Message: fmt.Sprintf(format, args...)}
}

// UserSafeMessage returns the message of a domain error, or a generic text for
// anything else.
func UserSafeMessage(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}
	for _, kind := range []error{ErrNotFound, ErrDuplicate, ErrValidation, ErrInvalidID} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "internal server error"
}
