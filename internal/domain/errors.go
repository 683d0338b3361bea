package domain

import "errors"

var (
	// ErrInvalidInput indicates missing or malformed request input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated indicates a missing or unresolvable bearer token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound indicates that no record matches both id and owner.
	ErrNotFound = errors.New("not found")
)

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInput returns an error carrying a caller-facing validation message
// that still matches ErrInvalidInput under errors.Is.
func InvalidInput(msg string) error {
	return &inputError{msg: msg}
}
