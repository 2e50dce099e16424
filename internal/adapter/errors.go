package adapter

import "errors"

// Errors mapped from remote responses. Match them with [errors.Is].
var (
	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for 401 responses, and locally when the
	// bearer token is missing or already expired.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned for 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned for 404 responses. The resolver treats it as an
	// outcome, not a failure.
	ErrNotFound = errors.New("remote record not found")
	// ErrConflict is returned for 409 responses.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError is returned for 500 responses.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway is returned for 502 responses.
	ErrBadGateway = errors.New("bad gateway")
)
