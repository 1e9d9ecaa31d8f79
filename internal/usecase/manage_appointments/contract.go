package manage_appointments

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// BackendClient is the backend slice the lifecycle manager drives.
type BackendClient interface {
	GetAppointments(ctx context.Context) ([]salonapi.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) error
	DeleteAppointment(ctx context.Context, id string) error
}

// Logger is the logging surface the manager needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
