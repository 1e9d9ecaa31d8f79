package manage_appointments

import "errors"

var (
	// ErrNotFound is returned when the appointment does not exist.
	ErrNotFound = errors.New("manage_appointments: appointment not found")

	// ErrInvalidStatus is returned for a status outside the four-value set.
	// Detected locally, before any network call.
	ErrInvalidStatus = errors.New("manage_appointments: invalid status")

	// ErrNotConfirmed is returned when a delete is attempted without the
	// explicit confirmation step. Deletion must never happen on a single
	// action.
	ErrNotConfirmed = errors.New("manage_appointments: deletion requires confirmation")

	// ErrBackendUnavailable is returned when the backend cannot be reached
	// or fails; the local list is left as it was.
	ErrBackendUnavailable = errors.New("manage_appointments: backend unavailable")
)
