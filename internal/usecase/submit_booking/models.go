package submit_booking

import (
	"time"

	"github.com/glamnails/salon-gateway/internal/domain"
)

// Request carries a completed booking draft into the use case.
type Request struct {
	ServiceID       string
	ArtistID        string
	AppointmentDate time.Time // calendar date; zero means unset
	AppointmentTime string    // HH:MM, one of the fixed slots
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Notes           string // optional
}

// FromDraft converts a booking draft into a use case request.
func FromDraft(d domain.BookingDraft) *Request {
	return &Request{
		ServiceID:       d.ServiceID,
		ArtistID:        d.ArtistID,
		AppointmentDate: d.AppointmentDate,
		AppointmentTime: d.AppointmentTime,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		Notes:           d.Notes,
	}
}

// Response is the created appointment as confirmed by the backend.
type Response struct {
	ID              string
	ServiceID       string
	ArtistID        string
	AppointmentDate string // YYYY-MM-DD
	AppointmentTime string
	CustomerName    string
	Status          string
}
