package list_appointments

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// AppointmentManager loads the admin appointment list and filters it
// locally.
type AppointmentManager interface {
	Load(ctx context.Context) ([]salonapi.Appointment, error)
	Filter(searchTerm, statusFilter string) []salonapi.Appointment
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
