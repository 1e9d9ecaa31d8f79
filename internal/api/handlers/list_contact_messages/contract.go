package list_contact_messages

import (
	"context"

	"github.com/glamnails/salon-gateway/internal/integrations/salonapi"
)

type ContactMessageLister interface {
	List(ctx context.Context) ([]salonapi.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
