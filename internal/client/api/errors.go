package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries the backend's error message together with the HTTP status.
// It unwraps to one of the sentinel errors above where applicable, so
// callers can both display Message and match with errors.Is.
type Error struct {
	Status  int
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.wrapped }
