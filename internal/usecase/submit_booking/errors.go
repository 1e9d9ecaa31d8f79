package submit_booking

import "errors"

var (
	// ErrMissingFields is returned when any required draft field is empty.
	// Deliberately one generic signal rather than per-field errors; the
	// public form reports "fill in all required fields" as a whole.
	ErrMissingFields = errors.New("submit_booking: missing required fields")

	// ErrDateInPast is returned when the appointment date is before today.
	ErrDateInPast = errors.New("submit_booking: appointment date is in the past")

	// ErrInvalidTimeSlot is returned when the time is not on the fixed
	// half-hour slot grid.
	ErrInvalidTimeSlot = errors.New("submit_booking: invalid time slot")

	// ErrBackendUnavailable is returned when the booking could not be
	// delivered to the backend. The draft is left intact so the user can
	// retry without re-entering anything.
	ErrBackendUnavailable = errors.New("submit_booking: backend unavailable")

	// ErrInternal is returned on unexpected internal failures.
	ErrInternal = errors.New("submit_booking: internal error")
)
