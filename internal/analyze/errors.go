package analyze

import (
	"errors"
	"fmt"
)

// ErrTypeNotFound is matched by every *TypeNotFoundError.
var ErrTypeNotFound = errors.New("type not found")

// TypeNotFoundError reports a type name that does not resolve.
type TypeNotFoundError struct {
	Name  string
	Cause error // Optional underlying loader error
}

func (e *TypeNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("type %s not found: %v", e.Name, e.Cause)
	}

	return fmt.Sprintf("type %s not found", e.Name)
}

// Is reports whether target is ErrTypeNotFound.
func (e *TypeNotFoundError) Is(target error) bool {
	return target == ErrTypeNotFound
}

func (e *TypeNotFoundError) Unwrap() error {
	return e.Cause
}

// NotFound returns a *TypeNotFoundError for name.
func NotFound(name string) error {
	return &TypeNotFoundError{Name: name}
}
