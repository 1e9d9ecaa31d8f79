package delete_contact_message

import "context"

type ContactMessageDeleter interface {
	Delete(ctx context.Context, id string, confirmed bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
