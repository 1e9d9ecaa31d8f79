package submit_booking

import (
	"context"
	"time"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
	"github.com/glamnails/salon-gateway/internal/service/catalog"
)

// AppointmentCreator is the backend slice that accepts a booking.
type AppointmentCreator interface {
	CreateAppointment(ctx context.Context, req salonapi.CreateAppointmentRequest) (*salonapi.Appointment, error)
}

// CatalogLoader supplies the service/artist options the booking form offers.
type CatalogLoader interface {
	LoadBookingCatalog(ctx context.Context) (*catalog.BookingCatalog, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
