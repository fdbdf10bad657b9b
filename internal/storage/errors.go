package storage

import (
	"errors"
	"fmt"
)

// Common storage errors that can be checked with errors.Is.
var (
	// ErrFormNotFound indicates the requested form does not exist.
	ErrFormNotFound = errors.New("form not found")
	// ErrAlreadySubmitted indicates the submitter has already submitted this
	// form (unique constraint on the storage side).
	ErrAlreadySubmitted = errors.New("already submitted")
	// ErrBadAPISecret indicates the storage service rejected the API secret.
	ErrBadAPISecret = errors.New("storage API secret rejected")
)

// APIError represents an HTTP error from the storage service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("storage API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("storage API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrBadAPISecret
	case 404:
		return target == ErrFormNotFound
	case 409:
		return target == ErrAlreadySubmitted
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("storage network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
