package domain

import "errors"

// Operation errors shared by the service layer. Handlers translate them to
// HTTP statuses; anything not listed here surfaces as an internal error.
var (
	// ErrUnauthorized: the caller could not be resolved to any account.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden: the caller exists but lacks the required role.
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
	// ErrConflict: the target is not in a state that allows the transition.
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)
