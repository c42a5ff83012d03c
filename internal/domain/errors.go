package domain

import "errors"

// Every lifecycle operation fails with exactly one of these, or with an
// untyped storage error the transport maps to an internal error.
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAlreadyRegistered    = errors.New("user is already registered for this event")
	ErrCapacityFull         = errors.New("event has reached its volunteer capacity")
	ErrInvalidStatus        = errors.New("invalid registration status")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("caller lacks the required role")
	ErrLocationNotFound     = errors.New("location not found")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)
