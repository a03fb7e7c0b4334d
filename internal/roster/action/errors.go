package action

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyBody is returned for a body that carries no fields: zero bytes,
	// whitespace, null or {}.
	ErrEmptyBody = errors.New("action: empty request body")

	// ErrMalformedBody is returned when the body is not a JSON object.
	ErrMalformedBody = errors.New("action: malformed request body")

	// ErrValidation is wrapped by every *Error raised for a decoded payload
	// that breaks a field rule.
	ErrValidation = errors.New("action: validation failed")

	// ErrInvalidID is returned by ParseID for anything but a positive integer.
	ErrInvalidID = errors.New("action: invalid id")
)

// FieldError describes why one field of a payload was rejected.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is returned when a request payload cannot be accepted. Fields is set
// when the payload decoded fine but failed validation.
type Error struct {
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Error
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return e.Err }
