package create_appointment

import (
	"time"

	"github.com/glamnails/salon-gateway/internal/domain"
	submitBooking "github.com/glamnails/salon-gateway/internal/usecase/submit_booking"
)

// CreateAppointmentRequest is the HTTP request model for a public booking.
type CreateAppointmentRequest struct {
	ServiceID       string `json:"service_id"`
	ArtistID        string `json:"artist_id"`
	AppointmentDate string `json:"appointment_date"` // "2025-10-15"
	AppointmentTime string `json:"appointment_time"` // "10:30"
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes,omitempty"`
}

// AppointmentResponse is the HTTP response model.
type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	ArtistID        string `json:"artist_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	CustomerName    string `json:"customer_name"`
	Status          string `json:"status"`
}

// ToUseCaseRequest parses the wire date and builds the use case request. An
// empty date stays a zero time so the required-fields check catches it.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	var date time.Time
	if r.AppointmentDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.AppointmentDate)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &submitBooking.Request{
		ServiceID:       r.ServiceID,
		ArtistID:        r.ArtistID,
		AppointmentDate: date,
		AppointmentTime: r.AppointmentTime,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP response.
func FromUseCaseResponse(resp *submitBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ServiceID:       resp.ServiceID,
		ArtistID:        resp.ArtistID,
		AppointmentDate: resp.AppointmentDate,
		AppointmentTime: resp.AppointmentTime,
		CustomerName:    resp.CustomerName,
		Status:          resp.Status,
	}
}
