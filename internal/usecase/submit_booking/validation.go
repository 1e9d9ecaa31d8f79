package submit_booking

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/glamnails/salon-gateway/internal/domain"
)

// validateRequest checks that every required field is present. The result
// collapses to one generic signal: the public form does not surface
// per-field errors. Notes stay optional.
func validateRequest(req *Request) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.ServiceID, validation.Required),
		validation.Field(&req.ArtistID, validation.Required),
		validation.Field(&req.AppointmentDate, validation.Required),
		validation.Field(&req.AppointmentTime, validation.Required),
		validation.Field(&req.CustomerName, validation.Required),
		validation.Field(&req.CustomerEmail, validation.Required),
		validation.Field(&req.CustomerPhone, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	return nil
}

// validateDate rejects dates strictly before today. No upper bound, no
// blackout dates, no per-artist availability.
func validateDate(date, now time.Time) error {
	if !domain.IsDateSelectable(date, now) {
		return ErrDateInPast
	}
	return nil
}

// validateTimeSlot requires the time to be on the fixed half-hour grid.
func validateTimeSlot(t string) error {
	if !domain.IsValidSlot(t) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, t)
	}
	return nil
}
