package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSessionCookie is returned when login succeeds without a session
	// cookie in the response.
	ErrNoSessionCookie = errors.New("login response carries no session cookie")

	ErrEmptyAddress = errors.New("empty address")
)
