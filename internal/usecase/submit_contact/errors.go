package submit_contact

import "errors"

var (
	// ErrMissingFields is returned when name, email or message is empty.
	ErrMissingFields = errors.New("submit_contact: missing required fields")

	// ErrInvalidEmail is returned for a malformed email address.
	ErrInvalidEmail = errors.New("submit_contact: invalid email address")

	// ErrNotFound is returned when the message to delete does not exist.
	ErrNotFound = errors.New("submit_contact: message not found")

	// ErrNotConfirmed is returned when a delete lacks the confirmation step.
	ErrNotConfirmed = errors.New("submit_contact: deletion requires confirmation")

	// ErrBackendUnavailable is returned when the backend cannot be reached;
	// the draft is left intact for retry.
	ErrBackendUnavailable = errors.New("submit_contact: backend unavailable")
)
