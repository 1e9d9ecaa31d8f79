package list_appointments

import (
	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
	"github.com/glamnails/salon-gateway/internal/locale"
)

// missingName stands in for records whose service was deleted after
// booking.
const missingName = "N/A"

// AppointmentView is an appointment rendered for the admin table, with
// display names resolved for the requested locale.
type AppointmentView struct {
	ID              string `json:"id"`
	ServiceName     string `json:"service_name"`
	ArtistName      string `json:"artist_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func toViews(appointments []salonapi.Appointment, l locale.Locale) []AppointmentView {
	out := make([]AppointmentView, len(appointments))
	for i, a := range appointments {
		serviceName := a.ServiceName().Resolve(l)
		if serviceName == "" {
			serviceName = missingName
		}
		artistName := a.ArtistName
		if artistName == "" {
			artistName = missingName
		}
		out[i] = AppointmentView{
			ID:              a.ID,
			ServiceName:     serviceName,
			ArtistName:      artistName,
			AppointmentDate: a.AppointmentDate,
			AppointmentTime: a.AppointmentTime,
			CustomerName:    a.CustomerName,
			CustomerEmail:   a.CustomerEmail,
			CustomerPhone:   a.CustomerPhone,
			Notes:           a.Notes,
			Status:          a.Status,
			CreatedAt:       a.CreatedAt,
		}
	}
	return out
}
