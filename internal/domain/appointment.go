package domain

import "errors"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// StatusFilterAll matches every status when filtering appointment lists.
const StatusFilterAll = "all"

// AllStatuses lists every valid appointment status. New appointments are
// always created as pending by the backend.
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ErrInvalidStatus is returned when a status value is outside the
// four-value set.
var ErrInvalidStatus = errors.New("domain: invalid appointment status")

// ParseStatus validates a raw status value. Any status may be set from any
// other; only membership in the set is checked.
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

func (s AppointmentStatus) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
