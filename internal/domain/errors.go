package domain

import "errors"

// Business error taxonomy. Services return these (possibly wrapped) and the
// HTTP layer maps them to status codes with errors.Is. Anything outside this
// set is treated as an internal fault.
var (
	// ErrInvalidToken signals a missing, malformed, tampered or expired token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials signals a failed email/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound signals a valid token whose subject no longer exists.
	// Distinct from ErrInvalidToken so clients can trigger a silent re-login.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden signals a valid identity with insufficient rights.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate email or duplicate pending invite.
	ErrConflict = errors.New("conflict")
	// ErrAlreadyProcessed signals an invite already in a terminal state.
	ErrAlreadyProcessed = errors.New("invite already processed")
	// ErrInvalid signals malformed or failed-validation input.
	ErrInvalid = errors.New("invalid input")
)
