package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrGuest is returned by Home when the server answered with the
	// welcome page.
	ErrGuest = errors.New("not signed in")

	ErrUnexpectedResponse = errors.New("unexpected response")
)
