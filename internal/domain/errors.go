package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Auth errors
	ErrMsgInvalidCredentials = "invalid credentials"

	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already exists"
	ErrMsgEmailTaken    = "email already exists"

	// Video errors
	ErrMsgVideoNotFound = "video not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidCredentials is the single, uniform authentication failure.
	// Every internal cause (unknown login, wrong password, store error during
	// login) collapses into this error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)
	ErrEmailTaken    = errors.New(ErrMsgEmailTaken)

	// Video errors
	ErrVideoNotFound = errors.New(ErrMsgVideoNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStoreUnavailable marks persistence failures. Callers may retry the
	// failed operation: both intake steps are idempotent by construction.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
