package domain

import "errors"

var (
	ErrFetch  = errors.New("fetch bikes")
	ErrCreate = errors.New("create bike")
	ErrUpdate = errors.New("update bike")
	ErrDelete = errors.New("delete bike")

	// ErrNotConfigured marks a remote table whose identifier is missing.
	ErrNotConfigured = errors.New("table not configured")

	ErrBikeNotFound = errors.New("bike not found")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrAuthConfiguration  = errors.New("users table misconfigured")
	ErrUserLookup         = errors.New("user lookup failed")
)

// BikeError is returned by bike repository operations. Message is safe to show to users.
type BikeError struct {
	Kind    error
	Message string
	Err     error
}

func (e *BikeError) Error() string {
	return e.Message
}

func (e *BikeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// AuthError is returned by login, registration and user lookups.
type AuthError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
