package submit_contact

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

// BackendClient is the backend slice the contact pipeline drives.
type BackendClient interface {
	CreateContactMessage(ctx context.Context, req salonapi.CreateContactMessageRequest) (*salonapi.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]salonapi.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
