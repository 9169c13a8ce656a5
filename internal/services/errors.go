package services

import (
	"errors"
	"fmt"
)

// Failure conditions returned to callers. None of these is fatal to the
// process; each request fails independently.
var (
	ErrNotFound           = errors.New("item not found")
	ErrUnauthorized       = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError reports a missing or malformed field. It is
// user-correctable and maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
