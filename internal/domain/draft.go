package domain

import (
	"errors"
	"fmt"
	"time"
)

// DraftField names one field of a booking draft for field-by-field updates.
type DraftField string

const (
	FieldServiceID     DraftField = "service_id"
	FieldArtistID      DraftField = "artist_id"
	FieldDate          DraftField = "appointment_date"
	FieldTime          DraftField = "appointment_time"
	FieldCustomerName  DraftField = "customer_name"
	FieldCustomerEmail DraftField = "customer_email"
	FieldCustomerPhone DraftField = "customer_phone"
	FieldNotes         DraftField = "notes"
)

// ErrUnknownField is returned by Set for a field name outside the draft.
var ErrUnknownField = errors.New("domain: unknown draft field")

// BookingDraft is the transient, client-owned booking input. It is never
// persisted; a failed submission must leave it untouched, a successful one
// resets it to empty. All fields except Notes are required at submit time.
type BookingDraft struct {
	ServiceID       string
	ArtistID        string
	AppointmentDate time.Time // calendar date only; zero means unset
	AppointmentTime string    // one of TimeSlots()
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Notes           string
}

// Set replaces a single field, leaving the others untouched. No validation
// happens here; drafts are validated only when submission is attempted.
func (d *BookingDraft) Set(field DraftField, value string) error {
	switch field {
	case FieldServiceID:
		d.ServiceID = value
	case FieldArtistID:
		d.ArtistID = value
	case FieldDate:
		if value == "" {
			d.AppointmentDate = time.Time{}
			return nil
		}
		date, err := time.Parse(DateFormat, value)
		if err != nil {
			return fmt.Errorf("domain: invalid date %q, expected %s: %w", value, DateFormat, err)
		}
		d.AppointmentDate = date
	case FieldTime:
		d.AppointmentTime = value
	case FieldCustomerName:
		d.CustomerName = value
	case FieldCustomerEmail:
		d.CustomerEmail = value
	case FieldCustomerPhone:
		d.CustomerPhone = value
	case FieldNotes:
		d.Notes = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Reset returns the draft to its initial empty state.
func (d *BookingDraft) Reset() {
	*d = BookingDraft{}
}
