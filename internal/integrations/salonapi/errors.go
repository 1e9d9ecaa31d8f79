package salonapi

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("salonapi client: resource not found")

	// ErrBadRequest is returned when the backend rejects the request data.
	ErrBadRequest = errors.New("salonapi client: backend rejected request")

	// ErrServer is returned on 5xx responses from the backend.
	ErrServer = errors.New("salonapi client: backend server error")

	// ErrInvalidResponse is returned when a response cannot be decoded.
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrInternal is returned on transport-level failures (connection,
	// timeout, request construction).
	ErrInternal = errors.New("salonapi client: internal error")
)
