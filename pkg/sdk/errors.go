package sdk

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials is returned by a CredentialStore when nothing is stored.
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrCredentialsCorrupt is returned by a CredentialStore when a stored
	// record exists but does not decode as a credentials record.
	ErrCredentialsCorrupt = errors.New("stored credentials are corrupt")

	// ErrNotAuthenticated is returned when an operation that requires an
	// authenticated session is called without one. This is a caller bug,
	// not a user-facing condition.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotInitialized is returned when a session operation runs before
	// Initialize has completed.
	ErrNotInitialized = errors.New("session manager not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called more than
	// once per process lifetime.
	ErrAlreadyInitialized = errors.New("session manager already initialized")
)

// ErrorKind classifies an API failure for display purposes.
type ErrorKind int

const (
	// ErrKindUnknown covers unexpected server responses.
	ErrKindUnknown ErrorKind = iota
	// ErrKindInvalidCredentials is a non-2xx login or authorization failure.
	ErrKindInvalidCredentials
	// ErrKindForbidden is an HTTP 403, typically CSRF or permission trouble.
	ErrKindForbidden
	// ErrKindUnavailable means the server could not be reached at all.
	ErrKindUnavailable
)

// APIError is a classified failure from the SISE API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	// Detail is the human-readable message from the response body
	// ({detail} or {message}), or a fallback when the body had neither.
	Detail string

	err error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrKindUnavailable:
		return fmt.Sprintf("cannot reach the SISE server: %s", e.Detail)
	case ErrKindForbidden:
		return fmt.Sprintf("forbidden (HTTP %d): %s", e.StatusCode, e.Detail)
	default:
		if e.StatusCode > 0 {
			return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Detail)
		}
		return e.Detail
	}
}

func (e *APIError) Unwrap() error { return e.err }

// IsForbidden reports whether err is an HTTP 403 API failure.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindForbidden
}

// IsInvalidCredentials reports whether err is a rejected credential exchange.
func IsInvalidCredentials(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindInvalidCredentials
}

// IsUnavailable reports whether err means the server was unreachable.
func IsUnavailable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindUnavailable
}
